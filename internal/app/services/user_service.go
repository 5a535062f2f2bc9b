package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrmarton/REST-API/internal/app/models"
	"github.com/mrmarton/REST-API/internal/app/models/dto"
	"github.com/mrmarton/REST-API/internal/app/repositories"
	"github.com/mrmarton/REST-API/internal/pkg/apperrors"
	"github.com/mrmarton/REST-API/internal/pkg/auth"
	"github.com/mrmarton/REST-API/internal/pkg/validation"
)

// Validation messages for user registration, in rule-declaration order
const (
	msgFirstNameRequired = "please enter your first name"
	msgLastNameRequired  = "please enter your last name"
	msgEmailRequired     = "please enter your email address"
	msgEmailInvalid      = "please enter a valid email address"
	msgEmailTaken        = "this email address is already in use"
	msgPasswordRequired  = "please enter a password"
)

// UserService defines the interface for user-related operations
type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (int64, error)
	GetCurrentUser(ctx context.Context, id int64) (*models.User, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo repositories.IUserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo repositories.IUserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// registrationRules builds the ordered rule set for a registration payload.
// The uniqueness rule consults persisted state through the repository.
func (s *userServiceImpl) registrationRules(req *dto.CreateUserRequest) validation.RuleSet {
	return validation.RuleSet{
		{Field: "firstName", Message: msgFirstNameRequired, Check: validation.NotEmpty(req.FirstName)},
		{Field: "lastName", Message: msgLastNameRequired, Check: validation.NotEmpty(req.LastName)},
		{Field: "emailAddress", Message: msgEmailRequired, Check: validation.NotEmpty(req.EmailAddress)},
		{Field: "emailAddress", Message: msgEmailInvalid, Check: validation.IsEmail(req.EmailAddress)},
		{Field: "emailAddress", Message: msgEmailTaken, Check: validation.Unique(func(ctx context.Context) (bool, error) {
			if req.EmailAddress == "" {
				return false, nil
			}
			return s.userRepo.EmailExists(ctx, req.EmailAddress)
		})},
		{Field: "password", Message: msgPasswordRequired, Check: validation.NotEmpty(req.Password)},
	}
}

// Register validates a registration payload, hashes the password and creates
// the user. The plaintext password is never persisted.
func (s *userServiceImpl) Register(ctx context.Context, req *dto.CreateUserRequest) (int64, error) {
	messages, err := s.registrationRules(req).Evaluate(ctx)
	if err != nil {
		return 0, fmt.Errorf("error validating user: %w", err)
	}
	if len(messages) > 0 {
		return 0, apperrors.NewValidationError(messages)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		EmailAddress: req.EmailAddress,
		Password:     hash,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// A concurrent registration can win the uniqueness race
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return 0, apperrors.NewValidationError([]string{msgEmailTaken})
		}
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// GetCurrentUser retrieves the authenticated user's record
func (s *userServiceImpl) GetCurrentUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	return user, nil
}
