package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc
}

func TestBootstrapBuiltinRoles(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}

	cases := []struct {
		role   string
		object string
		action string
		want   bool
	}{
		{"admin", "/api/v1/admin/products/42", "GET", true},
		{"admin", "/admin/deliveries", "POST", true},
		{"customer", "/api/v1/cart/items", "POST", true},
		{"customer", "/orders/by-order-no/JM20260101120000000001", "GET", true},
		{"customer", "/admin/products", "GET", false},
		{"courier", "/courier/deliveries/7/status", "PATCH", true},
		{"courier", "/balance", "GET", false},
	}
	for _, tc := range cases {
		allow, err := svc.EnforceRole(tc.role, tc.object, tc.action)
		if err != nil {
			t.Fatalf("enforce %s %s %s failed: %v", tc.role, tc.object, tc.action, err)
		}
		if allow != tc.want {
			t.Fatalf("enforce %s %s %s want %v got %v", tc.role, tc.object, tc.action, tc.want, allow)
		}
	}
}

func TestGrantAndRevokeRolePolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)

	if err := svc.GrantRolePolicy("ops", "/admin/orders", "GET"); err != nil {
		t.Fatalf("grant role policy failed: %v", err)
	}
	allow, err := svc.EnforceRole("ops", "/api/v1/admin/orders", "get")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected allow after grant")
	}

	policies, err := svc.GetRolePolicies("ops")
	if err != nil {
		t.Fatalf("get role policies failed: %v", err)
	}
	if len(policies) != 1 || policies[0].Object != "/admin/orders" || policies[0].Action != "GET" {
		t.Fatalf("unexpected policies: %+v", policies)
	}

	if err := svc.RevokeRolePolicy("ops", "/admin/orders", "GET"); err != nil {
		t.Fatalf("revoke role policy failed: %v", err)
	}
	allow, err = svc.EnforceRole("ops", "/admin/orders", "GET")
	if err != nil {
		t.Fatalf("enforce after revoke failed: %v", err)
	}
	if allow {
		t.Fatalf("expected deny after revoke")
	}
}

func TestEnsureRoleAndListRoles(t *testing.T) {
	svc := setupAuthzServiceTest(t)

	role, err := svc.EnsureRole(" night shift ")
	if err != nil {
		t.Fatalf("ensure role failed: %v", err)
	}
	if role != "role:night_shift" {
		t.Fatalf("role not normalized: %s", role)
	}

	if _, err := svc.EnsureRole("  "); err == nil {
		t.Fatalf("expected error for blank role")
	}

	roles, err := svc.ListRoles()
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	found := false
	for _, r := range roles {
		if r == "role:night_shift" {
			found = true
		}
	}
	if !found {
		t.Fatalf("role missing from list: %v", roles)
	}
}

func TestNormalizeObjectStripsAPIPrefix(t *testing.T) {
	if got := NormalizeObject("/api/v1/admin/products"); got != "/admin/products" {
		t.Fatalf("prefix not stripped: %s", got)
	}
	if got := NormalizeObject("admin/products"); got != "/admin/products" {
		t.Fatalf("leading slash not added: %s", got)
	}
	if got := NormalizeObject(""); got != "/" {
		t.Fatalf("empty object want / got %s", got)
	}
}
