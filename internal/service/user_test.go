package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/andrasyah/preferensi-api/internal/domain"
	"github.com/andrasyah/preferensi-api/internal/service"
)

func TestUserService_Get(t *testing.T) {
	auth, db := newTestAuthService(t)
	users := service.NewUserService(db.Users())
	ctx := context.Background()

	created, err := auth.Register(ctx, "get@example.com", "Getter", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, err := users.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if user.Email != "get@example.com" || user.Name != "Getter" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestUserService_Get_NotFound(t *testing.T) {
	db := newTestDB(t)
	users := service.NewUserService(db.Users())

	_, err := users.Get(context.Background(), "no-such-id")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_Update_PartialMerge(t *testing.T) {
	auth, db := newTestAuthService(t)
	users := service.NewUserService(db.Users())
	ctx := context.Background()

	created, err := auth.Register(ctx, "update@example.com", "Before", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := users.Update(ctx, created.ID, map[string]any{"name": "After"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	user, err := users.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if user.Name != "After" {
		t.Fatalf("expected updated name After, got %s", user.Name)
	}
	if user.Email != "update@example.com" {
		t.Fatalf("unspecified email must stay unchanged, got %s", user.Email)
	}
	if user.PasswordHash != created.PasswordHash || user.Token != created.Token {
		t.Fatal("unspecified fields must stay unchanged")
	}
}

func TestUserService_Update_IgnoresID(t *testing.T) {
	auth, db := newTestAuthService(t)
	users := service.NewUserService(db.Users())
	ctx := context.Background()

	created, err := auth.Register(ctx, "id@example.com", "User", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := users.Update(ctx, created.ID, map[string]any{"id": "hijacked", "name": "Renamed"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	user, err := users.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("document id must not be rewritable, got %s", user.ID)
	}
	if user.Name != "Renamed" {
		t.Fatalf("expected name Renamed, got %s", user.Name)
	}
}

func TestUserService_Update_EmptyFields(t *testing.T) {
	db := newTestDB(t)
	users := service.NewUserService(db.Users())

	// Updating nothing is a no-op, even for an absent id.
	if err := users.Update(context.Background(), "whatever", map[string]any{}); err != nil {
		t.Fatalf("Update with no fields: %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	auth, db := newTestAuthService(t)
	users := service.NewUserService(db.Users())
	ctx := context.Background()

	created, err := auth.Register(ctx, "delete@example.com", "Doomed", "password123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	if err := users.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := users.Get(ctx, created.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting an id that no longer exists succeeds the same way.
	if err := users.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete of absent id: %v", err)
	}
}
