package adapters

import "testing"

func TestPasswordService(t *testing.T) {
	service := NewPasswordService()

	t.Run("hash and verify round-trip", func(t *testing.T) {
		hash, err := service.HashPassword("correct horse battery")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if hash == "correct horse battery" {
			t.Fatal("hash must not equal the plain password")
		}
		if err := service.VerifyPassword(hash, "correct horse battery"); err != nil {
			t.Errorf("expected the password to verify: %v", err)
		}
		if err := service.VerifyPassword(hash, "wrong password"); err == nil {
			t.Error("expected a wrong password to fail verification")
		}
	})

	t.Run("strength validation enforces the minimum length", func(t *testing.T) {
		if err := service.ValidatePasswordStrength("short"); err == nil {
			t.Error("expected a short password to be rejected")
		}
		if err := service.ValidatePasswordStrength("longenough"); err != nil {
			t.Errorf("expected a long password to be accepted: %v", err)
		}
	})
}
