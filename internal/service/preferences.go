package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"

	"riftgate-rest-api/internal/domain"
	"riftgate-rest-api/internal/identity"
	"riftgate-rest-api/pkg/apierror"
)

// PreferencesService handles user preferences. It owns validation and the
// (de)serialization of the preferences record; storage lives in the identity
// service, keyed by user id.
type PreferencesService struct {
	users identity.UsersAPI
}

// NewPreferencesService creates a new preferences service.
// Returns nil if users is nil (required dependency).
func NewPreferencesService(users identity.UsersAPI) *PreferencesService {
	if users == nil {
		return nil // Cannot function without the identity client
	}
	return &PreferencesService{users: users}
}

// Update replaces a user's stored preferences with the known fields of the
// given payload and returns the stored record. The write is synchronous: a
// 200 means the identity service has accepted it.
func (s *PreferencesService) Update(ctx context.Context, userID string, raw json.RawMessage) (*domain.UserPreferences, error) {
	if userID == "" {
		return nil, apierror.BadRequest("userId is required")
	}

	prefs, err := decodePreferences(raw)
	if err != nil {
		return nil, err
	}

	stored, err := json.Marshal(prefs)
	if err != nil {
		log.Printf("[PreferencesService] encode preferences: %v", err)
		return nil, apierror.InternalError("Internal server error")
	}

	user, err := s.users.UpdatePreferences(ctx, userID, string(stored))
	if err != nil {
		return nil, mapIdentityError(err)
	}

	return &domain.UserPreferences{ID: user.ID, Preferences: *prefs, UpdatedAt: user.UpdatedAt}, nil
}

// Get returns a user's stored preferences. A user that exists but has never
// stored preferences gets an empty record, not an error.
func (s *PreferencesService) Get(ctx context.Context, userID string) (*domain.UserPreferences, error) {
	if userID == "" {
		return nil, apierror.BadRequest("userId is required")
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, mapIdentityError(err)
	}

	var prefs domain.Preferences
	if user.Preferences != "" {
		if err := json.Unmarshal([]byte(user.Preferences), &prefs); err != nil {
			// A corrupt stored blob must not fail the read; serve an empty
			// record instead.
			log.Printf("[PreferencesService] stored preferences for user %s are not valid JSON: %v", userID, err)
			prefs = domain.Preferences{}
		}
	}

	return &domain.UserPreferences{ID: user.ID, Preferences: prefs, UpdatedAt: user.UpdatedAt}, nil
}

// decodePreferences requires a JSON object and projects it onto the known
// preference fields. Unknown fields are dropped; field contents pass through
// untouched.
func decodePreferences(raw json.RawMessage) (*domain.Preferences, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, apierror.BadRequest("preferences object is required")
	}

	var prefs domain.Preferences
	if err := json.Unmarshal(trimmed, &prefs); err != nil {
		return nil, apierror.BadRequest("preferences must be a JSON object")
	}
	return &prefs, nil
}

// mapIdentityError translates an identity client failure onto the API error
// taxonomy. Unlike upstream game-data errors, identity failures are never
// passed through: a missing user is a 404, everything else a masked 500.
func mapIdentityError(err error) error {
	if errors.Is(err, identity.ErrUserNotFound) {
		return apierror.NotFound("User not found")
	}
	log.Printf("[PreferencesService] identity service error: %v", err)
	return apierror.InternalError("Internal server error")
}
