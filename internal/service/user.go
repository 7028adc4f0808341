package service

import (
	"context"

	"github.com/andrasyah/preferensi-api/internal/domain"
)

// UserService handles fetch, partial update, and delete of user
// documents.
type UserService struct {
	users domain.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

// Get retrieves a user by id.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Update applies a partial merge of the given fields onto the stored
// document. Field names and types are not validated; unspecified
// fields are left unchanged.
func (s *UserService) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	// The document id is addressing state, not a mutable field.
	delete(fields, "id")
	return s.users.Update(ctx, id, fields)
}

// Delete removes the user document. Deleting an absent id succeeds.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
