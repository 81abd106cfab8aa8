package service

import (
	"context"
	"fmt"

	"feedapi/internal/apperr"
	"feedapi/internal/auth"
	"feedapi/internal/models"
	"feedapi/internal/repository"
)

// defaultStatus is assigned to every freshly created user.
const defaultStatus = "I am new!"

type SignupRequest struct {
	Email    string
	Name     string
	Password string
}

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, string, error)
	GetStatus(ctx context.Context, userID string) (string, error)
	UpdateStatus(ctx context.Context, userID, status string) error
}

type authService struct {
	userRepo repository.UserRepository
	codec    *auth.TokenCodec
}

func NewAuthService(userRepo repository.UserRepository, codec *auth.TokenCodec) AuthService {
	return &authService{
		userRepo: userRepo,
		codec:    codec,
	}
}

// Signup hashes the password and persists the new user. Email uniqueness is
// enforced by the store; a duplicate surfaces as a validation error.
func (s *authService) Signup(ctx context.Context, req SignupRequest) (string, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", fmt.Errorf("signup: %w", err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		Name:         req.Name,
		Status:       defaultStatus,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return user.UserID, nil
}

// Login verifies the credentials and issues a signed token together with the
// user id.
func (s *authService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperr.Is(err, apperr.NotFound) {
			return "", "", apperr.New(apperr.AuthFailed, "A user with this email could not be found.")
		}
		return "", "", err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", "", apperr.New(apperr.AuthFailed, "Wrong password.")
	}

	token, err := s.codec.Issue(user.UserID, user.Email)
	if err != nil {
		return "", "", fmt.Errorf("issuing token: %w", err)
	}

	return token, user.UserID, nil
}

func (s *authService) GetStatus(ctx context.Context, userID string) (string, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Status, nil
}

func (s *authService) UpdateStatus(ctx context.Context, userID, status string) error {
	return s.userRepo.UpdateStatus(ctx, userID, status)
}
