// internal/domain/user/entity.go
package user

import (
	"strings"
	"time"
)

// User represents the user entity
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password  string    `gorm:"not null;size:255" json:"-"` // Don't return in JSON
	Username  string    `gorm:"size:100" json:"username"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Address   string    `gorm:"size:500" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

// Sanitized returns a copy of the user without the password hash
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// GetDisplayName returns display name (username or email)
func (u *User) GetDisplayName() string {
	if name := strings.TrimSpace(u.Username); name != "" {
		return name
	}
	return u.Email
}

// UpdateFields enumerates every updatable profile column. A nil field is
// left untouched; a non-nil field is written, including empty strings.
type UpdateFields struct {
	Username *string
	Email    *string
	Phone    *string
	Address  *string
}

// IsEmpty reports whether no field is set
func (f UpdateFields) IsEmpty() bool {
	return f.Username == nil && f.Email == nil && f.Phone == nil && f.Address == nil
}
