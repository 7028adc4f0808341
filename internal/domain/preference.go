package domain

import "context"

// Preference is a free-form preference entry owned by exactly one
// user, stored in that user's sub-collection. The ID is assigned by
// the store and lives outside the document body.
type Preference struct {
	ID       string `json:"-"`
	Name     string `json:"name"`
	Ambience string `json:"ambience"`
	Utils    string `json:"utils"`
	View     string `json:"view"`
	UserID   string `json:"userId"`
}

// PreferenceRepository defines persistence operations for preferences.
type PreferenceRepository interface {
	// Create stores the preference under the owning user's
	// sub-collection and assigns its ID.
	Create(ctx context.Context, pref *Preference) error
	// ListByUser returns every preference stored for the given user.
	ListByUser(ctx context.Context, userID string) ([]Preference, error)
}
