package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ResetPasswordInput represents the input for password reset.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// ResetPasswordOutput represents the output of password reset.
type ResetPasswordOutput struct {
	Message string
}

// ResetPasswordUseCase handles password reset logic.
type ResetPasswordUseCase struct {
	userRepo          adapter.UserRepository
	passwordService   adapter.PasswordService
	resetTokenService adapter.PasswordResetTokenService
}

// NewResetPasswordUseCase creates a new ResetPasswordUseCase instance.
func NewResetPasswordUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	resetTokenService adapter.PasswordResetTokenService,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:          userRepo,
		passwordService:   passwordService,
		resetTokenService: resetTokenService,
	}
}

// Execute performs the password reset.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, input ResetPasswordInput) (*ResetPasswordOutput, error) {
	resetToken, err := uc.resetTokenService.ValidateResetToken(ctx, input.Token)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired password reset token",
			domainerror.ErrInvalidToken,
		)
	}

	if time.Now().UTC().After(resetToken.ExpiresAt) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"password reset token has expired",
			domainerror.ErrInvalidToken,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.NewPassword); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			domainerror.ErrWeakPassword,
		)
	}

	user, err := uc.userRepo.FindByID(ctx, resetToken.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	passwordHash, err := uc.passwordService.HashPassword(input.NewPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if err := uc.userRepo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return nil, fmt.Errorf("failed to update user password: %w", err)
	}

	// The token is single use; log but don't fail if invalidation fails,
	// the password was already reset.
	if err := uc.resetTokenService.InvalidateResetToken(ctx, input.Token); err != nil {
		slog.Error("Failed to invalidate reset token", "error", err, "userID", user.ID)
	}

	return &ResetPasswordOutput{
		Message: "Password has been successfully reset",
	}, nil
}
