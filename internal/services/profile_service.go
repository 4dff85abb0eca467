package services

import "folio.dev/internal/models"

// ProfileService exposes the biographical content
type ProfileService struct {
	profile models.Profile
}

// NewProfileService creates a new ProfileService
func NewProfileService(p models.Profile) *ProfileService {
	return &ProfileService{profile: p}
}

// Get returns the profile
func (s *ProfileService) Get() models.Profile {
	return s.profile
}

// ContactInfo returns the strings the copy buttons put on the clipboard
func (s *ProfileService) ContactInfo() models.ContactInfo {
	return models.ContactInfo{Email: s.profile.Email, Phone: s.profile.Phone}
}
