package service

import (
	"context"
	"errors"

	"green_valley_api/internal/common"
	"green_valley_api/internal/common/security"
	"green_valley_api/internal/domain/model"
	"green_valley_api/internal/domain/repository"

	"github.com/google/uuid"
)

type AuthService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{userRepo: userRepo}
}

type RegisterRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	FlatNumber string `json:"flat_number"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Message string `json:"message"`
}

// UserSummary is the account view returned at login: enough for the client
// to populate its session store, nothing more.
type UserSummary struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	FlatNumber *string `json:"flat_number"`
}

type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *UserSummary `json:"user"`
}

// Register creates a resident account. It never issues a token; the caller
// logs in separately. The repository's unique index is the authoritative
// duplicate check, the lookup here only gives a friendlier early answer.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, common.Errorf("please provide name, email, and password: %w", common.ErrValidation)
	}

	if _, err := s.userRepo.FindByEmail(ctx, req.Email); err == nil {
		return nil, common.Errorf("email is already registered: %w", common.ErrConflict)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, common.Errorf("failed to check existing account: %w", err)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, common.Errorf("failed to hash password: %w", err)
	}

	var flatNumber *string
	if req.FlatNumber != "" {
		flatNumber = &req.FlatNumber
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Email:          req.Email,
		HashedPassword: hashedPassword,
		FlatNumber:     flatNumber,
		Role:           model.RoleUser, // Public registration never creates admins
		Status:         model.StatusActive,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Two racing registrations can both pass the lookup above; the
		// unique index turns the loser into a conflict here.
		return nil, err
	}

	return &RegisterResponse{Message: "Registration successful! Please login to continue."}, nil
}

// Login checks credentials in a fixed order: lookup, account status,
// password. Unknown email and wrong password return the same error so a
// caller cannot probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.Errorf("email and password are required: %w", common.ErrValidation)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, common.Errorf("failed to find user: %w", err)
	}

	if user.Status != model.StatusActive {
		return nil, common.Errorf("your account is inactive, contact management: %w", common.ErrForbidden)
	}

	match, err := security.CheckPasswordHash(req.Password, user.HashedPassword)
	if err != nil {
		return nil, common.Errorf("failed to verify password: %w", err)
	}
	if !match {
		return nil, common.ErrUnauthorized
	}

	token, err := security.GenerateToken(user.ID, user.Role, user.Name)
	if err != nil {
		return nil, common.Errorf("failed to generate token: %w", err)
	}

	return &LoginResponse{
		Message: "Login successful",
		Token:   token,
		User:    summarize(user),
	}, nil
}

// Me resolves the account behind a verified token's user ID.
func (s *AuthService) Me(ctx context.Context, userID string) (*UserSummary, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return summarize(user), nil
}

func summarize(user *model.User) *UserSummary {
	return &UserSummary{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		FlatNumber: user.FlatNumber,
	}
}
