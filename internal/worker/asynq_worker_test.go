package worker

import (
	"errors"
	"testing"

	"github.com/joymarket/joymarket/internal/models"
	"github.com/joymarket/joymarket/internal/provider"
	"github.com/joymarket/joymarket/internal/service"
)

func TestResolveCourierName(t *testing.T) {
	if got := resolveCourierName(nil); got != "-" {
		t.Fatalf("nil delivery: got %q", got)
	}
	if got := resolveCourierName(&models.Delivery{}); got != "-" {
		t.Fatalf("delivery without courier: got %q", got)
	}
	delivery := &models.Delivery{
		Courier: &models.Courier{User: &models.User{FullName: "  Kurnia Wijaya  "}},
	}
	if got := resolveCourierName(delivery); got != "Kurnia Wijaya" {
		t.Fatalf("unexpected courier name: %q", got)
	}
	blank := &models.Delivery{
		Courier: &models.Courier{User: &models.User{FullName: "   "}},
	}
	if got := resolveCourierName(blank); got != "-" {
		t.Fatalf("blank name should fall back, got %q", got)
	}
}

func TestDropOrRetryEmailError(t *testing.T) {
	c := NewConsumer(&provider.Container{})

	dropped := []error{
		service.ErrEmailServiceDisabled,
		service.ErrEmailServiceNotConfigured,
		service.ErrEmailRecipientRejected,
		service.ErrInvalidEmail,
	}
	for _, err := range dropped {
		if got := c.dropOrRetryEmailError("test_email_failed", "JM20260101120000000001", "budi@example.com", err); got != nil {
			t.Fatalf("expected %v to be dropped, got: %v", err, got)
		}
	}

	transient := errors.New("dial tcp: connection refused")
	if got := c.dropOrRetryEmailError("test_email_failed", "JM20260101120000000001", "budi@example.com", transient); !errors.Is(got, transient) {
		t.Fatalf("expected transient error to propagate, got: %v", got)
	}
}
