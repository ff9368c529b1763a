package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a user record in the database
type User struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Email         string     `json:"email" db:"email"`
	Username      string     `json:"username" db:"username"`
	PasswordHash  *string    `json:"-" db:"password_hash"` // nil for users created through an identity provider
	EmailVerified bool       `json:"emailVerified" db:"email_verified"`
	LastLoginAt   *time.Time `json:"lastLoginAt" db:"last_login_at"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`

	Profile       *UserProfile   `json:"profile,omitempty" db:"-"`
	OAuthAccounts []OAuthAccount `json:"oauthAccounts,omitempty" db:"-"`
}

// UserProfile holds display information of a user, one per user.
type UserProfile struct {
	ID          uuid.UUID `json:"id" db:"id"`
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	DisplayName *string   `json:"displayName" db:"display_name"`
	FirstName   *string   `json:"firstName" db:"first_name"`
	LastName    *string   `json:"lastName" db:"last_name"`
	AvatarURL   *string   `json:"avatarUrl" db:"avatar_url"`
	Bio         *string   `json:"bio" db:"bio"`
	Timezone    *string   `json:"timezone" db:"timezone"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// OAuthAccount links a user to an identity provider account.
// The (Provider, ProviderAccountID) pair is unique.
type OAuthAccount struct {
	ID                uuid.UUID `json:"id" db:"id"`
	UserID            uuid.UUID `json:"userId" db:"user_id"`
	Provider          string    `json:"provider" db:"provider"`
	ProviderAccountID string    `json:"providerAccountId" db:"provider_account_id"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" db:"updated_at"`
}

// UserCreate carries the fields accepted when creating a user explicitly.
type UserCreate struct {
	Email         string
	Username      string
	Password      *string
	EmailVerified bool
}

// UserUpdate is a partial update, nil fields are left untouched.
type UserUpdate struct {
	ID            uuid.UUID
	Email         *string
	Username      *string
	PasswordHash  *string
	EmailVerified *bool
	LastLoginAt   *time.Time
}

// ProfileUpdate is an upsert of profile fields, nil fields keep their stored value.
type ProfileUpdate struct {
	UserID      uuid.UUID
	DisplayName *string
	FirstName   *string
	LastName    *string
	AvatarURL   *string
	Bio         *string
	Timezone    *string
}

// IsEmpty reports whether the update carries no field at all.
func (p ProfileUpdate) IsEmpty() bool {
	return p.DisplayName == nil && p.FirstName == nil && p.LastName == nil &&
		p.AvatarURL == nil && p.Bio == nil && p.Timezone == nil
}
