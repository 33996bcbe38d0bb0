package service

import (
	"fmt"

	"savebot/internal/domain"
	"savebot/internal/repository"
)

// ProfileService handles user profile logic
type ProfileService struct {
	users   repository.UserRepository
	ownerID int64
}

// NewProfileService creates a new profile service
func NewProfileService(users repository.UserRepository, ownerID int64) *ProfileService {
	return &ProfileService{users: users, ownerID: ownerID}
}

// Ensure creates the profile row if the user is unseen
func (s *ProfileService) Ensure(userID int64) error {
	return s.users.Upsert(userID)
}

// IsOwner reports whether the user is the configured bot owner
func (s *ProfileService) IsOwner(userID int64) bool {
	return userID == s.ownerID
}

// Language returns the user's interface language
func (s *ProfileService) Language(userID int64) (domain.Language, error) {
	return s.users.GetLanguage(userID)
}

// HasLanguage reports whether the user confirmed a language choice
func (s *ProfileService) HasLanguage(userID int64) (bool, error) {
	return s.users.HasLanguage(userID)
}

// SetLanguage validates and stores the language choice
func (s *ProfileService) SetLanguage(userID int64, lang domain.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("invalid language: %q", lang)
	}
	return s.users.SetLanguage(userID, lang)
}

// Format returns the user's preferred output format
func (s *ProfileService) Format(userID int64) (domain.Format, error) {
	return s.users.GetFormat(userID)
}

// SetFormat validates and stores the preferred output format
func (s *ProfileService) SetFormat(userID int64, format domain.Format) error {
	if !format.Valid() {
		return fmt.Errorf("invalid format: %q", format)
	}
	return s.users.SetFormat(userID, format)
}
