package models

import "time"

// User is the authenticated identity.
type User struct {
	ID    string
	Email string
}

// Session is the result of a successful sign in. A nil *Session means no
// session is present.
type Session struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Profile holds the user's editable display data.
type Profile struct {
	UserID   string
	Email    string
	FullName string
}

// Export describes a vault snapshot written by the server.
type Export struct {
	URL       string
	ObjectKey string
	Count     int
	ExpiresAt time.Time
}
