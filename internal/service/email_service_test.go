package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/joymarket/joymarket/internal/config"
)

func TestEmailServiceDisabledAndUnconfigured(t *testing.T) {
	disabled := NewEmailService(&config.EmailConfig{Enabled: false})
	if err := disabled.SendCustomEmail("budi@example.com", "Tes", "Halo"); !errors.Is(err, ErrEmailServiceDisabled) {
		t.Fatalf("expected email service disabled, got: %v", err)
	}

	unconfigured := NewEmailService(&config.EmailConfig{Enabled: true, Host: "smtp.example.com"})
	if err := unconfigured.SendCustomEmail("budi@example.com", "Tes", "Halo"); !errors.Is(err, ErrEmailServiceNotConfigured) {
		t.Fatalf("expected email service not configured, got: %v", err)
	}
}

func TestEmailServiceRejectsInvalidRecipient(t *testing.T) {
	svc := NewEmailService(&config.EmailConfig{
		Enabled: true,
		Host:    "smtp.example.com",
		Port:    587,
		From:    "noreply@joymarket.local",
	})
	if err := svc.SendOrderCreatedEmail("bukan-email", OrderEmailInput{OrderNo: "JM20260101120000000001"}, "id-ID"); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected invalid email, got: %v", err)
	}
}

func TestBuildFromAddress(t *testing.T) {
	if got := buildFromAddress("noreply@joymarket.local", ""); got != "noreply@joymarket.local" {
		t.Fatalf("bare from changed: %q", got)
	}
	got := buildFromAddress("noreply@joymarket.local", "JoymarKet")
	if !strings.Contains(got, "JoymarKet") || !strings.Contains(got, "<noreply@joymarket.local>") {
		t.Fatalf("named from malformed: %q", got)
	}
}

func TestBuildEmailMessage(t *testing.T) {
	msg := buildEmailMessage("noreply@joymarket.local", "budi@example.com", "Pesanan JM1 diterima", "Terima kasih.")
	for _, want := range []string{
		"From: noreply@joymarket.local\r\n",
		"To: budi@example.com\r\n",
		"Content-Type: text/plain; charset=UTF-8\r\n",
		"\r\n\r\nTerima kasih.",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message missing %q:\n%s", want, msg)
		}
	}
	if !strings.Contains(msg, "Subject: ") {
		t.Fatalf("message missing subject header:\n%s", msg)
	}
}

func TestIsEmailRecipientRejected(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"550 5.1.1 recipient address rejected", true},
		{"no such user here", true},
		{"550 mailbox unavailable", true},
		{"451 temporary failure", false},
		{"dial tcp: connection refused", false},
		{"", false},
	}
	for _, tc := range cases {
		var err error
		if tc.message != "" {
			err = errors.New(tc.message)
		}
		if got := isEmailRecipientRejected(err); got != tc.want {
			t.Fatalf("isEmailRecipientRejected(%q) = %v, want %v", tc.message, got, tc.want)
		}
	}
}
