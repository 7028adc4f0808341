// Package docstore implements a small document store on top of
// SQLite. Documents are JSON bodies addressed by a collection path and
// a document id; sub-collections nest under a parent document as slash
// paths ("users/{userId}/preferensi").
package docstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/andrasyah/preferensi-api/internal/domain"
	"github.com/andrasyah/preferensi-api/internal/repository/docstore/migrations"
)

// DB wraps the SQLite connection and exposes typed repositories over
// the generic document operations.
type DB struct {
	sql *sql.DB
}

// New opens a SQLite database at the given path and configures it for
// use. It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// SQLite allows a single writer; keep the pool at one connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{sql: db}, nil
}

// Migrate applies all unapplied schema migrations.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.sql)
}

// Close closes the underlying connection.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Users returns the user repository backed by this store.
func (d *DB) Users() *UserRepository {
	return &UserRepository{db: d}
}

// Preferences returns the preference repository backed by this store.
func (d *DB) Preferences() *PreferenceRepository {
	return &PreferenceRepository{db: d}
}

// Document is a raw document returned by List: its store-assigned id
// and the JSON body.
type Document struct {
	ID   string
	Body []byte
}

// Set stores doc (marshalled to JSON) under collection/id, replacing
// any existing body.
func (d *DB) Set(ctx context.Context, collection, id string, doc any) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	now := time.Now().UTC()
	res, err := d.sql.ExecContext(ctx,
		`UPDATE documents SET body = ?, updated_at = ? WHERE collection = ? AND id = ?`,
		string(body), now, collection, id,
	)
	if err != nil {
		return fmt.Errorf("set document %s/%s: %w", collection, id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}

	if _, err := d.sql.ExecContext(ctx,
		`INSERT INTO documents (collection, id, body, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		collection, id, string(body), now, now,
	); err != nil {
		return fmt.Errorf("set document %s/%s: %w", collection, id, err)
	}
	return nil
}

// Get loads the document at collection/id into dst. Returns
// domain.ErrNotFound if no such document exists.
func (d *DB) Get(ctx context.Context, collection, id string, dst any) error {
	var body string
	err := d.sql.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = ? AND id = ?`,
		collection, id,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("query document %s/%s: %w", collection, id, err)
	}

	if err := json.Unmarshal([]byte(body), dst); err != nil {
		return fmt.Errorf("unmarshal document %s/%s: %w", collection, id, err)
	}
	return nil
}

// Merge applies the given fields onto the stored document, leaving
// all other fields unchanged. Returns domain.ErrNotFound if the
// document does not exist.
func (d *DB) Merge(ctx context.Context, collection, id string, fields map[string]any) error {
	tx, err := d.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var body string
	err = tx.QueryRowContext(ctx,
		`SELECT body FROM documents WHERE collection = ? AND id = ?`,
		collection, id,
	).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("query document %s/%s: %w", collection, id, err)
	}

	doc := make(map[string]any)
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return fmt.Errorf("unmarshal document %s/%s: %w", collection, id, err)
	}
	for k, v := range fields {
		doc[k] = v
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE documents SET body = ?, updated_at = ? WHERE collection = ? AND id = ?`,
		string(merged), time.Now().UTC(), collection, id,
	); err != nil {
		return fmt.Errorf("update document %s/%s: %w", collection, id, err)
	}

	return tx.Commit()
}

// Delete removes the document at collection/id. Deleting an absent
// document is not an error.
func (d *DB) Delete(ctx context.Context, collection, id string) error {
	if _, err := d.sql.ExecContext(ctx,
		`DELETE FROM documents WHERE collection = ? AND id = ?`,
		collection, id,
	); err != nil {
		return fmt.Errorf("delete document %s/%s: %w", collection, id, err)
	}
	return nil
}

// List returns every document in the collection, ordered by creation
// time.
func (d *DB) List(ctx context.Context, collection string) ([]Document, error) {
	rows, err := d.sql.QueryContext(ctx,
		`SELECT id, body FROM documents WHERE collection = ? ORDER BY created_at, id`,
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("list collection %s: %w", collection, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var doc Document
		var body string
		if err := rows.Scan(&doc.ID, &body); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		doc.Body = []byte(body)
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// FindByField returns the first document in the collection whose body
// has the given top-level field equal to value. Returns
// domain.ErrNotFound when nothing matches.
func (d *DB) FindByField(ctx context.Context, collection, field string, value any) (*Document, error) {
	var doc Document
	var body string
	err := d.sql.QueryRowContext(ctx,
		`SELECT id, body FROM documents
		 WHERE collection = ? AND json_extract(body, ?) = ?
		 ORDER BY created_at, id LIMIT 1`,
		collection, "$."+field, value,
	).Scan(&doc.ID, &body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("query collection %s by %s: %w", collection, field, err)
	}
	doc.Body = []byte(body)
	return &doc, nil
}

// isUniqueConstraintError reports whether err is a SQLite unique
// constraint violation.
func isUniqueConstraintError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
