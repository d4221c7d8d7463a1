package authz

import "fmt"

// RoleSeed built-in role definition
type RoleSeed struct {
	Role     string
	Inherits []string
	Policies []Policy
}

// BuiltinRoleSeeds the three marketplace roles. Admin owns the whole
// admin surface; customers and couriers get their own API groups.
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "admin",
			Policies: []Policy{
				{Object: "/admin/*", Action: "*"},
				{Object: "/me", Action: "*"},
				{Object: "/me/*", Action: "*"},
			},
		},
		{
			Role: "customer",
			Policies: []Policy{
				{Object: "/me", Action: "*"},
				{Object: "/me/*", Action: "*"},
				{Object: "/cart", Action: "*"},
				{Object: "/cart/*", Action: "*"},
				{Object: "/orders", Action: "*"},
				{Object: "/orders/*", Action: "*"},
				{Object: "/balance", Action: "GET"},
				{Object: "/balance/*", Action: "*"},
			},
		},
		{
			Role: "courier",
			Policies: []Policy{
				{Object: "/me", Action: "*"},
				{Object: "/me/*", Action: "*"},
				{Object: "/courier/*", Action: "*"},
			},
		},
	}
}

// BootstrapBuiltinRoles seeds the role matrix at startup. Seeding is
// additive; operator-granted rules survive restarts.
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
		}

		for _, parent := range seed.Inherits {
			parentRole, err := NormalizeRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
