package domain

import "time"

// User is an account record. Provider decides which credential applies:
// "email" accounts carry a bcrypt hash, "google" accounts authenticate via
// a verified ID token and keep no local password.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	Provider  string    `json:"provider"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RefreshToken is a stored refresh credential. Deleting the row revokes it
// even while the JWT itself is still unexpired.
type RefreshToken struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
