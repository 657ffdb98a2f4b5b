package delivery

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestNewSMTPSenderFromEnv(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		t.Setenv("SMTP_USERNAME", "")
		t.Setenv("SMTP_PASSWORD", "")

		if _, err := NewSMTPSenderFromEnv(zerolog.Nop()); err != ErrEmailNotConfigured {
			t.Fatalf("expected ErrEmailNotConfigured, got %v", err)
		}
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("SMTP_USERNAME", "wiz@wiztheplanning.com")
		t.Setenv("SMTP_PASSWORD", "app-password")
		t.Setenv("SMTP_SERVER", "")
		t.Setenv("SMTP_PORT", "")
		t.Setenv("SENDER_NAME", "")

		s, err := NewSMTPSenderFromEnv(zerolog.Nop())
		if err != nil {
			t.Fatalf("NewSMTPSenderFromEnv() error = %v", err)
		}
		if s.host != "smtp.gmail.com" || s.port != 587 {
			t.Fatalf("sender = %+v", s)
		}
		if s.senderName != "위플" {
			t.Fatalf("sender name = %q", s.senderName)
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("SMTP_USERNAME", "wiz@wiztheplanning.com")
		t.Setenv("SMTP_PASSWORD", "app-password")
		t.Setenv("SMTP_PORT", "not-a-port")

		if _, err := NewSMTPSenderFromEnv(zerolog.Nop()); err == nil {
			t.Fatal("expected error for invalid SMTP_PORT")
		}
	})
}
