package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/unnita1235/PropertyRentalApplication/internal/domain"
	"github.com/unnita1235/PropertyRentalApplication/internal/service/ports"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

// TokenIssuer signs an access token for an authenticated user.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

type UserService struct {
	repo   ports.UserRepo
	tokens TokenIssuer
}

func NewUserService(repo ports.UserRepo, tokens TokenIssuer) *UserService {
	return &UserService{repo: repo, tokens: tokens}
}

func (s *UserService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if input.Email == "" || input.Password == "" || input.FullName == "" {
		return nil, fmt.Errorf("%w: email, password and full_name are required", domain.ErrValidation)
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: role must be Owner or Customer", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:   string(hash),
		Role:           input.Role,
		FullName:       input.FullName,
		Phone:          input.Phone,
		TelegramChatID: input.TelegramChatID,
	}

	if err = s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, fmt.Errorf("%w: email and password are required", domain.ErrValidation)
	}

	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
