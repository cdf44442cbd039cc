package auth

import (
	"time"

	"github.com/jeondoksi/jeondoksi-cli/internal/entities"
)

// LoginInput defines the request for logging in
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput defines the response for logging in
type LoginOutput struct {
	Status *Status
}

// SignupInput defines the request for creating an account
type SignupInput struct {
	Email           string
	Password        string
	PasswordConfirm string
	Nickname        string
}

// SignupOutput defines the response for creating an account
type SignupOutput struct {
	// Message is shown before sending the reader to the login screen
	Message string
}

// MeOutput defines the response for loading the signed-in reader
type MeOutput struct {
	User *entities.User
}

// Status describes the stored session. Claims are read without verifying
// the signature and are for display only.
type Status struct {
	LoggedIn  bool
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Expired   bool
	SavedAt   time.Time
}

// StatusOutput defines the response for inspecting the session
type StatusOutput struct {
	Status *Status
}
