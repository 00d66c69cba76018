package models

import (
	"encoding/json"
	"time"
)

// UserIDPrefix is prepended to the phone number to form a profile ID.
const UserIDPrefix = "user:"

// UserProfile is the identity record created at signup.
// Phone is unique among stored profiles.
type UserProfile struct {
	// ID is always UserIDPrefix + Phone.
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserProfile builds a profile keyed by phone and stamped with now.
func NewUserProfile(firstName, lastName, email, phone string, now time.Time) UserProfile {
	return UserProfile{
		ID:        UserIDPrefix + phone,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		CreatedAt: now.UTC(),
	}
}

// FullName joins first and last name with a single space.
func (p UserProfile) FullName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}

// PinRecord binds a PIN digest to a phone number. One record per phone.
type PinRecord struct {
	Phone   string `json:"phone"`
	PinHash string `json:"pinHash"`
}

// AuthState is the persisted session flag.
type AuthState struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Phone           string `json:"phone"`
}

// Document is an opaque JSON blob stored under a caller-chosen key.
type Document struct {
	ID        string          `json:"id"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"createdAt"`
}

// SignupRequest carries the signup form. Password is validated but not
// stored.
type SignupRequest struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
	PIN       string
}
