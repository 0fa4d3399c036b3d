package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/expense-tracker/backend/internal/application/adapter"
	"github.com/expense-tracker/backend/internal/domain/entity"
	domainerror "github.com/expense-tracker/backend/internal/domain/error"
)

type fakeUserRepo struct {
	byEmail   map[string]*entity.User
	byID      map[uuid.UUID]*entity.User
	updatedPW map[uuid.UUID]string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail:   make(map[string]*entity.User),
		byID:      make(map[uuid.UUID]*entity.User),
		updatedPW: make(map[uuid.UUID]string),
	}
}

func (r *fakeUserRepo) add(user *entity.User) {
	r.byEmail[user.Email] = user
	r.byID[user.ID] = user
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.add(user)
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, ok := r.byEmail[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *fakeUserRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	if _, ok := r.byID[id]; !ok {
		return domainerror.ErrUserNotFound
	}
	r.updatedPW[id] = passwordHash
	return nil
}

// fakePasswordService hashes by prefixing, which keeps assertions readable.
type fakePasswordService struct{}

func (fakePasswordService) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakePasswordService) VerifyPassword(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return errors.New("password mismatch")
	}
	return nil
}

func (fakePasswordService) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("too short")
	}
	return nil
}

type fakeTokenService struct {
	pairCount   int
	valid       map[string]bool
	invalidated []string
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{valid: make(map[string]bool)}
}

func (s *fakeTokenService) GenerateTokenPair(ctx context.Context, userID uuid.UUID, email string, rememberMe bool) (*adapter.TokenPair, error) {
	s.pairCount++
	refresh := fmt.Sprintf("refresh-%d", s.pairCount)
	s.valid[refresh] = true
	return &adapter.TokenPair{
		AccessToken:  fmt.Sprintf("access-%d", s.pairCount),
		RefreshToken: refresh,
	}, nil
}

func (s *fakeTokenService) ValidateAccessToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeTokenService) ValidateRefreshToken(ctx context.Context, token string) (*adapter.TokenClaims, error) {
	if _, ok := s.valid[token]; !ok {
		return nil, errors.New("unknown token")
	}
	return &adapter.TokenClaims{UserID: uuid.New(), Email: "user@example.com"}, nil
}

func (s *fakeTokenService) InvalidateRefreshToken(ctx context.Context, token string) error {
	s.valid[token] = false
	s.invalidated = append(s.invalidated, token)
	return nil
}

func (s *fakeTokenService) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	return s.valid[token], nil
}

type fakeResetTokenService struct {
	tokens map[string]*adapter.PasswordResetToken
}

func newFakeResetTokenService() *fakeResetTokenService {
	return &fakeResetTokenService{tokens: make(map[string]*adapter.PasswordResetToken)}
}

func (s *fakeResetTokenService) GenerateResetToken(ctx context.Context, userID uuid.UUID, email string) (*adapter.PasswordResetToken, error) {
	token := &adapter.PasswordResetToken{
		Token:     fmt.Sprintf("reset-%d", len(s.tokens)+1),
		UserID:    userID,
		Email:     email,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}
	s.tokens[token.Token] = token
	return token, nil
}

func (s *fakeResetTokenService) ValidateResetToken(ctx context.Context, token string) (*adapter.PasswordResetToken, error) {
	stored, ok := s.tokens[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return stored, nil
}

func (s *fakeResetTokenService) InvalidateResetToken(ctx context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

type fakeEmailSender struct {
	sent []adapter.SendEmailInput
}

func (s *fakeEmailSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	s.sent = append(s.sent, input)
	return &adapter.SendEmailResult{ProviderID: "test"}, nil
}
