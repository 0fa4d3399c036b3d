package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// ForgotPasswordInput represents the input for a forgot password request.
type ForgotPasswordInput struct {
	Email string
}

// ForgotPasswordOutput represents the output of a forgot password request.
type ForgotPasswordOutput struct {
	Message string
}

const forgotPasswordMessage = "If an account with that email exists, we have sent a password reset link"

// ForgotPasswordUseCase handles forgot password logic.
type ForgotPasswordUseCase struct {
	userRepo          adapter.UserRepository
	resetTokenService adapter.PasswordResetTokenService
	emailSender       adapter.EmailSender
	appBaseURL        string
}

// NewForgotPasswordUseCase creates a new ForgotPasswordUseCase instance.
func NewForgotPasswordUseCase(
	userRepo adapter.UserRepository,
	resetTokenService adapter.PasswordResetTokenService,
	emailSender adapter.EmailSender,
	appBaseURL string,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:          userRepo,
		resetTokenService: resetTokenService,
		emailSender:       emailSender,
		appBaseURL:        appBaseURL,
	}
}

// Execute performs the forgot password request.
// Always returns success to prevent email enumeration.
func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, input ForgotPasswordInput) (*ForgotPasswordOutput, error) {
	if !isValidEmail(input.Email) {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidEmail,
			"invalid email format",
			domainerror.ErrInvalidEmail,
		)
	}

	user, err := uc.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		slog.Debug("Forgot password requested for non-existent email", "email", input.Email)
		return &ForgotPasswordOutput{Message: forgotPasswordMessage}, nil
	}

	resetToken, err := uc.resetTokenService.GenerateResetToken(ctx, user.ID, user.Email)
	if err != nil {
		slog.Error("Failed to generate reset token", "error", err, "userID", user.ID)
		return &ForgotPasswordOutput{Message: forgotPasswordMessage}, nil
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", uc.appBaseURL, resetToken.Token)

	if uc.emailSender != nil {
		_, err = uc.emailSender.Send(ctx, adapter.SendEmailInput{
			To:      user.Email,
			Subject: "Reset your password",
			HTML:    passwordResetHTML(user.Name, resetURL),
			Text:    fmt.Sprintf("Reset your password: %s (the link expires in 1 hour)", resetURL),
		})
		if err != nil {
			slog.Error("Failed to send password reset email", "error", err, "userID", user.ID)
		} else {
			slog.Info("Password reset email sent", "userID", user.ID, "email", user.Email)
		}
	} else {
		// Fallback for development when email is not configured.
		slog.Info("Password reset token generated (email sender not configured)",
			"userID", user.ID,
			"email", user.Email,
			"resetURL", resetURL,
		)
	}

	return &ForgotPasswordOutput{Message: forgotPasswordMessage}, nil
}

func passwordResetHTML(name, resetURL string) string {
	return fmt.Sprintf(`<p>Hi %s,</p>
<p>We received a request to reset your password. Click the link below to choose a new one. The link expires in 1 hour.</p>
<p><a href="%s">Reset password</a></p>
<p>If you did not request this, you can safely ignore this email.</p>`, name, resetURL)
}
