// internal/domain/user/service.go
package user

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/your-org/shopstore/internal/config"
	"github.com/your-org/shopstore/internal/pkg/apperrors"
	"github.com/your-org/shopstore/internal/pkg/auth"
	"gorm.io/gorm"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords, so callers cannot distinguish the two.
var ErrInvalidCredentials = apperrors.New(apperrors.KindUnauthorized, "invalid email or password")

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service handles user business logic
type Service struct {
	repo            *Repository
	config          *config.Config
	passwordManager *auth.PasswordManager
	jwtManager      *auth.JWTManager
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		repo:            NewRepository(db),
		config:          cfg,
		passwordManager: auth.NewPasswordManager(cfg),
		jwtManager:      auth.NewJWTManager(cfg),
	}
}

// RegisterRequest represents user registration data
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User        *User  `json:"user"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Register creates a new user account. The existence pre-check is advisory:
// two concurrent registrations can both pass it, and the unique constraint
// on email remains the final backstop.
func (s *Service) Register(req *RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !emailPattern.MatchString(email) {
		return nil, apperrors.New(apperrors.KindValidation, "invalid email address")
	}

	// Check if user already exists
	if _, err := s.repo.GetByEmail(email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !apperrors.IsNotFound(err) {
		return nil, err
	}

	// Hash password
	hashedPassword, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindValidation, "password rejected", err)
	}

	created, err := s.repo.Create(email, hashedPassword, req.Username)
	if err != nil {
		return nil, err
	}

	return s.authResponse(created)
}

// Login authenticates a user and returns a sanitized record with a session
// token, or ErrInvalidCredentials.
func (s *Service) Login(req *LoginRequest) (*AuthResponse, error) {
	user, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.passwordManager.VerifyPassword(req.Password, user.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// GetProfile retrieves a user profile without the password hash
func (s *Service) GetProfile(userID uint) (*User, error) {
	return s.repo.GetByID(userID)
}

// UpdateProfile applies a partial profile update. If the email is changing,
// it is pre-checked against other accounts; the unique constraint still
// backs the check under interleaving.
func (s *Service) UpdateProfile(userID uint, fields UpdateFields) (*User, error) {
	if fields.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*fields.Email))
		if !emailPattern.MatchString(email) {
			return nil, apperrors.New(apperrors.KindValidation, "invalid email address")
		}

		existing, err := s.repo.GetByEmail(email)
		if err == nil && existing.ID != userID {
			return nil, ErrEmailConflict
		}
		if err != nil && !apperrors.IsNotFound(err) {
			return nil, err
		}
	}

	if err := s.repo.Update(userID, fields); err != nil {
		return nil, err
	}

	return s.repo.GetByID(userID)
}

func (s *Service) authResponse(u *User) (*AuthResponse, error) {
	token, err := s.jwtManager.GenerateToken(u.ID, u.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	sanitized := u.Sanitized()
	return &AuthResponse{
		User:        &sanitized,
		AccessToken: token,
		ExpiresIn:   int64(s.config.JWT.AccessTokenExpiry.Seconds()),
	}, nil
}
