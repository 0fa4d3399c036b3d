package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

type fakeTokenRepo struct {
	refreshValid map[string]bool
	resetTokens  map[string]*model.PasswordResetTokenModel
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{
		refreshValid: make(map[string]bool),
		resetTokens:  make(map[string]*model.PasswordResetTokenModel),
	}
}

func (r *fakeTokenRepo) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	r.refreshValid[token] = true
	return nil
}

func (r *fakeTokenRepo) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return r.refreshValid[token], nil
}

func (r *fakeTokenRepo) InvalidateRefreshToken(ctx context.Context, token string) error {
	r.refreshValid[token] = false
	return nil
}

func (r *fakeTokenRepo) SavePasswordResetToken(ctx context.Context, token string, userID uuid.UUID, email string, expiresAt time.Time) error {
	r.resetTokens[token] = &model.PasswordResetTokenModel{
		Token:     token,
		UserID:    userID,
		Email:     email,
		ExpiresAt: expiresAt,
	}
	return nil
}

func (r *fakeTokenRepo) GetPasswordResetToken(ctx context.Context, token string) (*model.PasswordResetTokenModel, error) {
	return r.resetTokens[token], nil
}

func (r *fakeTokenRepo) InvalidatePasswordResetToken(ctx context.Context, token string) error {
	delete(r.resetTokens, token)
	return nil
}

func TestTokenService(t *testing.T) {
	ctx := context.Background()

	t.Run("generate and validate a token pair", func(t *testing.T) {
		repo := newFakeTokenRepo()
		service := NewTokenService("test-secret", repo)
		userID := uuid.New()

		pair, err := service.GenerateTokenPair(ctx, userID, "user@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != userID {
			t.Errorf("expected user %s, got %s", userID, claims.UserID)
		}
		if claims.Email != "user@example.com" {
			t.Errorf("unexpected email %s", claims.Email)
		}

		if _, err := service.ValidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Errorf("expected the refresh token to validate: %v", err)
		}
		valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil || !valid {
			t.Errorf("expected the refresh token to be stored valid, got %v/%v", valid, err)
		}
	})

	t.Run("token types do not cross over", func(t *testing.T) {
		service := NewTokenService("test-secret", newFakeTokenRepo())
		pair, err := service.GenerateTokenPair(ctx, uuid.New(), "user@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
			t.Error("expected a refresh token to fail access validation")
		}
		if _, err := service.ValidateRefreshToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected an access token to fail refresh validation")
		}
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		signer := NewTokenService("secret-a", newFakeTokenRepo())
		verifier := NewTokenService("secret-b", newFakeTokenRepo())

		pair, err := signer.GenerateTokenPair(ctx, uuid.New(), "user@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := verifier.ValidateAccessToken(ctx, pair.AccessToken); err == nil {
			t.Error("expected validation with the wrong secret to fail")
		}
	})

	t.Run("invalidated refresh tokens stop validating against storage", func(t *testing.T) {
		repo := newFakeTokenRepo()
		service := NewTokenService("test-secret", repo)
		pair, err := service.GenerateTokenPair(ctx, uuid.New(), "user@example.com", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := service.InvalidateRefreshToken(ctx, pair.RefreshToken); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		valid, err := service.IsRefreshTokenValid(ctx, pair.RefreshToken)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if valid {
			t.Error("expected the invalidated token to be rejected")
		}
	})
}

func TestPasswordResetTokenService(t *testing.T) {
	ctx := context.Background()

	t.Run("generated tokens validate and invalidate once", func(t *testing.T) {
		repo := newFakeTokenRepo()
		service := NewPasswordResetTokenService(repo)
		userID := uuid.New()

		token, err := service.GenerateResetToken(ctx, userID, "user@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(token.Token) != 64 {
			t.Errorf("expected a 64 character hex token, got %d", len(token.Token))
		}

		validated, err := service.ValidateResetToken(ctx, token.Token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if validated.UserID != userID {
			t.Errorf("expected user %s, got %s", userID, validated.UserID)
		}

		if err := service.InvalidateResetToken(ctx, token.Token); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := service.ValidateResetToken(ctx, token.Token); err == nil {
			t.Error("expected a used token to be rejected")
		}
	})

	t.Run("unknown tokens are rejected", func(t *testing.T) {
		service := NewPasswordResetTokenService(newFakeTokenRepo())
		if _, err := service.ValidateResetToken(ctx, "no-such-token"); err == nil {
			t.Error("expected an unknown token to be rejected")
		}
	})
}
