package auth

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
)

// LogoutUserInput represents the input for user logout.
type LogoutUserInput struct {
	RefreshToken string
}

// LogoutUserUseCase handles user logout by invalidating the refresh token.
type LogoutUserUseCase struct {
	tokenService adapter.TokenService
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(tokenService adapter.TokenService) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the user logout. An already-invalid token is not an
// error; logout is idempotent.
func (uc *LogoutUserUseCase) Execute(ctx context.Context, input LogoutUserInput) error {
	if input.RefreshToken == "" {
		return nil
	}
	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return fmt.Errorf("failed to invalidate refresh token: %w", err)
	}
	return nil
}
