package handler

import (
	"github.com/andrasyah/preferensi-api/internal/domain"
)

// UserDTO is the JSON representation of a user document. The password
// hash is never echoed.
type UserDTO struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Token: u.Token,
	}
}

// PreferenceDTO is the JSON representation of a preference document,
// annotated with its store-assigned id.
type PreferenceDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Ambience string `json:"ambience"`
	Utils    string `json:"utils"`
	View     string `json:"view"`
	UserID   string `json:"userId"`
}

func toPreferenceDTO(p domain.Preference) PreferenceDTO {
	return PreferenceDTO{
		ID:       p.ID,
		Name:     p.Name,
		Ambience: p.Ambience,
		Utils:    p.Utils,
		View:     p.View,
		UserID:   p.UserID,
	}
}

func toPreferenceDTOs(prefs []domain.Preference) []PreferenceDTO {
	dtos := make([]PreferenceDTO, len(prefs))
	for i, p := range prefs {
		dtos[i] = toPreferenceDTO(p)
	}
	return dtos
}
