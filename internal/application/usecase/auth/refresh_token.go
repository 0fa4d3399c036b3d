package auth

import (
	"context"
	"fmt"

	"github.com/expense-tracker/backend/internal/application/adapter"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

// RefreshTokenInput represents the input for token refresh.
type RefreshTokenInput struct {
	RefreshToken string
}

// RefreshTokenOutput represents the output of token refresh.
type RefreshTokenOutput struct {
	AccessToken  string
	RefreshToken string
}

// RefreshTokenUseCase handles refresh token rotation: the presented
// token is validated, invalidated, and replaced by a fresh pair.
type RefreshTokenUseCase struct {
	tokenService adapter.TokenService
}

// NewRefreshTokenUseCase creates a new RefreshTokenUseCase instance.
func NewRefreshTokenUseCase(tokenService adapter.TokenService) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		tokenService: tokenService,
	}
}

// Execute performs the token refresh.
func (uc *RefreshTokenUseCase) Execute(ctx context.Context, input RefreshTokenInput) (*RefreshTokenOutput, error) {
	claims, err := uc.tokenService.ValidateRefreshToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid or expired refresh token",
			domainerror.ErrInvalidToken,
		)
	}

	valid, err := uc.tokenService.IsRefreshTokenValid(ctx, input.RefreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to check refresh token: %w", err)
	}
	if !valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"refresh token has been invalidated",
			domainerror.ErrInvalidToken,
		)
	}

	// Rotate: the old refresh token is single use.
	if err := uc.tokenService.InvalidateRefreshToken(ctx, input.RefreshToken); err != nil {
		return nil, fmt.Errorf("failed to invalidate refresh token: %w", err)
	}

	tokenPair, err := uc.tokenService.GenerateTokenPair(ctx, claims.UserID, claims.Email, false)
	if err != nil {
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	return &RefreshTokenOutput{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
	}, nil
}
