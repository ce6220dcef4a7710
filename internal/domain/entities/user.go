package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleMentor UserRole = "mentor"
	UserRoleMentee UserRole = "mentee"
	UserRoleAdmin  UserRole = "admin"
)

// ContactMethod represents a preferred contact channel
type ContactMethod string

const (
	ContactMethodEmail    ContactMethod = "email"
	ContactMethodPhone    ContactMethod = "phone"
	ContactMethodWhatsapp ContactMethod = "whatsapp"
)

// ContactInfo holds a user's contact channels. Each channel carries its own
// visibility flag; a hidden channel is only disclosed to mentees with an
// accepted mentorship request.
type ContactInfo struct {
	Email           string        `json:"email"`
	EmailVisible    bool          `json:"emailVisible"`
	Phone           string        `json:"phone"`
	PhoneVisible    bool          `json:"phoneVisible"`
	Whatsapp        string        `json:"whatsapp"`
	WhatsappVisible bool          `json:"whatsappVisible"`
	PreferredMethod ContactMethod `json:"preferredMethod"`
}

// ContactView is the viewer-dependent projection of a ContactInfo. Hidden
// channels render as null.
type ContactView struct {
	Email           *string       `json:"email"`
	Phone           *string       `json:"phone"`
	Whatsapp        *string       `json:"whatsapp"`
	PreferredMethod ContactMethod `json:"preferredMethod,omitempty"`
}

// User represents a registered mentor, mentee or admin.
type User struct {
	ID                uuid.UUID   `json:"id"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	PasswordHash      string      `json:"-"`
	Role              UserRole    `json:"role"`
	Title             string      `json:"title,omitempty"`
	Bio               string      `json:"bio,omitempty"`
	Expertise         []string    `json:"expertise,omitempty"`
	Interests         []string    `json:"interests,omitempty"`
	Contact           ContactInfo `json:"contact"`
	IsProfileComplete bool        `json:"isProfileComplete"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
	DeletedAt         *time.Time  `json:"-"`
}

// Summary returns the public profile fields exposed alongside requests.
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Title: u.Title,
		Bio:   u.Bio,
	}
}

// UserSummary is the public projection of a user joined onto other records.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Title string    `json:"title,omitempty"`
	Bio   string    `json:"bio,omitempty"`
}

// RegisterInput represents input for user registration.
type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=mentor mentee"`
}

// LoginInput represents input for user login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents an authentication response.
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// ChangePasswordInput represents input for changing the password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=8"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// UpdateProfileInput represents a profile update. Nil fields are left
// untouched.
type UpdateProfileInput struct {
	Name      *string      `json:"name,omitempty"`
	Title     *string      `json:"title,omitempty"`
	Bio       *string      `json:"bio,omitempty"`
	Expertise []string     `json:"expertise,omitempty"`
	Interests []string     `json:"interests,omitempty"`
	Contact   *ContactInfo `json:"contact,omitempty"`
	Password  *string      `json:"password,omitempty"`
}
