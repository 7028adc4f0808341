package docstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/andrasyah/preferensi-api/internal/domain"
)

// preferensiCollection is the sub-collection holding a user's
// preferences.
func preferensiCollection(userID string) string {
	return usersCollection + "/" + userID + "/preferensi"
}

// PreferenceRepository implements domain.PreferenceRepository on the
// document store.
type PreferenceRepository struct {
	db *DB
}

func (r *PreferenceRepository) Create(ctx context.Context, pref *domain.Preference) error {
	pref.ID = uuid.NewString()
	if err := r.db.Set(ctx, preferensiCollection(pref.UserID), pref.ID, pref); err != nil {
		return fmt.Errorf("create preference: %w", err)
	}
	return nil
}

func (r *PreferenceRepository) ListByUser(ctx context.Context, userID string) ([]domain.Preference, error) {
	docs, err := r.db.List(ctx, preferensiCollection(userID))
	if err != nil {
		return nil, fmt.Errorf("list preferences: %w", err)
	}

	prefs := make([]domain.Preference, 0, len(docs))
	for _, doc := range docs {
		var pref domain.Preference
		if err := json.Unmarshal(doc.Body, &pref); err != nil {
			return nil, fmt.Errorf("unmarshal preference %s: %w", doc.ID, err)
		}
		pref.ID = doc.ID
		prefs = append(prefs, pref)
	}
	return prefs, nil
}
