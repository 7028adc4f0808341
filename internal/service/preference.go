package service

import (
	"context"
	"fmt"

	"github.com/andrasyah/preferensi-api/internal/domain"
)

// PreferenceService handles creation and listing of per-user
// preferences.
type PreferenceService struct {
	prefs domain.PreferenceRepository
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(prefs domain.PreferenceRepository) *PreferenceService {
	return &PreferenceService{prefs: prefs}
}

// Create stores a new preference under the acting user's
// sub-collection and returns it with its store-assigned id.
func (s *PreferenceService) Create(ctx context.Context, userID, name, ambience, utils, view string) (*domain.Preference, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	pref := &domain.Preference{
		Name:     name,
		Ambience: ambience,
		Utils:    utils,
		View:     view,
		UserID:   userID,
	}
	if err := s.prefs.Create(ctx, pref); err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}
	return pref, nil
}

// ListByUser returns every preference stored for the given user.
func (s *PreferenceService) ListByUser(ctx context.Context, userID string) ([]domain.Preference, error) {
	return s.prefs.ListByUser(ctx, userID)
}
