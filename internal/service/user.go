package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"rentable-backend/internal/domain"
	"rentable-backend/internal/logger"
	"rentable-backend/internal/repository"
	"rentable-backend/internal/security"

	"github.com/google/uuid"
)

const minPasswordLength = 8

type userService struct {
	userRepo     repository.UserRepository
	tokenManager security.TokenManager
}

func NewUserService(userRepo repository.UserRepository, tokenManager security.TokenManager) UserService {
	return &userService{userRepo: userRepo, tokenManager: tokenManager}
}

func (s *userService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	logger.EnterMethod("userService.Register", "email", email)

	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil || addr.Address != strings.TrimSpace(email) {
		err = fmt.Errorf("%w: malformed email %q", domain.ErrInvalidInput, email)
		logger.ExitMethodWithError("userService.Register", err)
		return nil, err
	}
	if len(password) < minPasswordLength {
		err = fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
		logger.ExitMethodWithError("userService.Register", err)
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, addr.Address); err == nil {
		err = fmt.Errorf("%w: email %s already registered", domain.ErrConflict, addr.Address)
		logger.ExitMethodWithError("userService.Register", err)
		return nil, err
	} else if !errors.Is(err, domain.ErrNotFound) {
		logger.ExitMethodWithError("userService.Register", err)
		return nil, err
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		logger.ExitMethodWithError("userService.Register", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &domain.User{Email: strings.ToLower(addr.Address), PasswordHash: hash}
	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ExitMethodWithError("userService.Register", err)
		return nil, err
	}

	logger.ExitMethod("userService.Register", "userID", user.ID)
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}

	ok, err := security.CheckPassword(user.PasswordHash, password)
	if err != nil {
		return "", fmt.Errorf("verify password: %w", err)
	}
	if !ok {
		return "", domain.ErrInvalidCredentials
	}
	return s.tokenManager.GenerateAccessToken(user.ID, user.Email)
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}
