package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/andrasyah/preferensi-api/internal/domain"
)

const usersCollection = "users"

// UserRepository implements domain.UserRepository on the document
// store.
type UserRepository struct {
	db *DB
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	if err := r.db.Set(ctx, usersCollection, user.ID, user); err != nil {
		if isUniqueConstraintError(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user := &domain.User{}
	if err := r.db.Get(ctx, usersCollection, id, user); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	doc, err := r.db.FindByField(ctx, usersCollection, "email", email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	user := &domain.User{}
	if err := json.Unmarshal(doc.Body, user); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if err := r.db.Merge(ctx, usersCollection, id, fields); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdateToken(ctx context.Context, id, token string) error {
	return r.Update(ctx, id, map[string]any{"token": token})
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.Delete(ctx, usersCollection, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
