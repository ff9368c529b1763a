package models

import "time"

// UserInfo holds the identity claims of an authenticated caller.
type UserInfo struct {
	Sub               string     `json:"sub"`
	Email             string     `json:"email,omitempty"`
	EmailVerified     bool       `json:"email_verified,omitempty"`
	Name              string     `json:"name,omitempty"`
	GivenName         string     `json:"given_name,omitempty"`
	FamilyName        string     `json:"family_name,omitempty"`
	Nickname          string     `json:"nickname,omitempty"`
	PreferredUsername string     `json:"preferred_username,omitempty"`
	Picture           string     `json:"picture,omitempty"`
	Roles             []string   `json:"roles,omitempty"`
	Plan              string     `json:"plan,omitempty"`
	CreatedAt         *time.Time `json:"created_at,omitempty"`
}

// Merge fills empty fields of u with the values of other.
func (u *UserInfo) Merge(other *UserInfo) {
	if other == nil {
		return
	}
	if u.Email == "" {
		u.Email = other.Email
	}
	if !u.EmailVerified {
		u.EmailVerified = other.EmailVerified
	}
	if u.Name == "" {
		u.Name = other.Name
	}
	if u.GivenName == "" {
		u.GivenName = other.GivenName
	}
	if u.FamilyName == "" {
		u.FamilyName = other.FamilyName
	}
	if u.Nickname == "" {
		u.Nickname = other.Nickname
	}
	if u.PreferredUsername == "" {
		u.PreferredUsername = other.PreferredUsername
	}
	if u.Picture == "" {
		u.Picture = other.Picture
	}
	if u.CreatedAt == nil {
		u.CreatedAt = other.CreatedAt
	}
}

// ProvisionRequest is the normalized input of the provisioning upsert.
type ProvisionRequest struct {
	Provider          string
	ProviderAccountID string
	Email             string
	Username          string
	EmailVerified     bool
	Profile           ProfileUpdate
}
