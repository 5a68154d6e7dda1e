package models

import "time"

// User is an account record as stored in the "users" table.
// PasswordHash must never leave the service layer: callers receive a
// [Profile] instead.
type User struct {
	// ID is the surrogate identifier assigned by the database on insert.
	ID int64 `json:"-"`

	// Username is the unique login identifier. Immutable after creation.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Excluded from JSON so it can never end up in a response body.
	PasswordHash string `json:"-"`

	// Name is the display name shown in the UI.
	Name string `json:"name"`

	// Email is optional contact information.
	Email string `json:"email,omitempty"`

	// IsActive marks whether the account may authenticate.
	// Inactive accounts fail login the same way as wrong credentials.
	IsActive bool `json:"-"`

	// CreatedAt and UpdatedAt are set by the database.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`

	// LastLoginAt records the most recent successful login, if any.
	LastLoginAt *time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile is the non-secret subset of a User returned to callers after
// authentication. It is safe to serialize and display.
type Profile struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile strips credential and lifecycle fields from the user record.
func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterRequest carries the registration form fields submitted by a client.
type RegisterRequest struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Name            string `json:"name"`
	Email           string `json:"email,omitempty"`
}

// LoginRequest carries the login form fields submitted by a client.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserStats aggregates account counters shown on the dashboard.
type UserStats struct {
	// TotalUsers is the number of rows in the users table.
	TotalUsers int64 `json:"total_users"`

	// ActiveUsers is the number of accounts with is_active = true.
	ActiveUsers int64 `json:"active_users"`

	// RecentSignups is the number of accounts created within the last
	// thirty days.
	RecentSignups int64 `json:"recent_signups"`
}
