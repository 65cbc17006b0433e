// internal/domain/user/repository.go
package user

import (
	"errors"
	"strings"
	"time"

	"github.com/your-org/shopstore/internal/pkg/apperrors"
	"gorm.io/gorm"
)

// Sentinel errors returned by the repository
var (
	ErrNotFound       = apperrors.New(apperrors.KindNotFound, "user not found")
	ErrDuplicateEmail = apperrors.New(apperrors.KindDuplicate, "email already registered")
	ErrEmailConflict  = apperrors.New(apperrors.KindDuplicate, "email already in use by another user")
)

// Repository handles database operations for users
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new user repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user. A unique-constraint violation on the email
// column is translated into ErrDuplicateEmail instead of leaking engine text.
func (r *Repository) Create(email, passwordHash, username string) (*User, error) {
	user := User{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		Password: passwordHash,
		Username: username,
	}

	if err := r.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to create user", err)
	}

	return &user, nil
}

// GetByID retrieves a user by primary key, without the password hash
func (r *Repository) GetByID(id uint) (*User, error) {
	var user User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to get user", err)
	}

	sanitized := user.Sanitized()
	return &sanitized, nil
}

// GetByEmail retrieves a user by email, including the password hash.
// Intended for the login flow only.
func (r *Repository) GetByEmail(email string) (*User, error) {
	var user User
	err := r.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, apperrors.Wrap(apperrors.KindStorage, "failed to get user by email", err)
	}
	return &user, nil
}

// Update applies the fields present in the partial set and touches
// updated_at. An empty field set is a validation error. An email that
// collides with a different user id fails with ErrEmailConflict.
func (r *Repository) Update(id uint, fields UpdateFields) error {
	if fields.IsEmpty() {
		return apperrors.New(apperrors.KindValidation, "no fields to update")
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if fields.Username != nil {
		updates["username"] = *fields.Username
	}
	if fields.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*fields.Email))
	}
	if fields.Phone != nil {
		updates["phone"] = *fields.Phone
	}
	if fields.Address != nil {
		updates["address"] = *fields.Address
	}

	result := r.db.Model(&User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ErrEmailConflict
		}
		return apperrors.Wrap(apperrors.KindStorage, "failed to update user", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a user and, through the cascading foreign keys, every
// per-user row the account owns.
func (r *Repository) Delete(id uint) error {
	result := r.db.Delete(&User{}, id)
	if result.Error != nil {
		return apperrors.Wrap(apperrors.KindStorage, "failed to delete user", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a unique-constraint failure.
// TranslateError maps these to gorm.ErrDuplicatedKey; the string check is a
// fallback for drivers that miss the translation.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
