package domain

import "context"

// User represents a registered account. The JSON tags mirror the
// persisted document shape: the password field holds the bcrypt hash,
// never the plaintext, and the token field holds the most recently
// issued JWT.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"password"`
	Token        string `json:"token"`
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Update applies a partial merge of the given fields onto the
	// stored document; fields not supplied are left unchanged.
	Update(ctx context.Context, id string, fields map[string]any) error
	UpdateToken(ctx context.Context, id, token string) error
	// Delete removes the document. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error
}
