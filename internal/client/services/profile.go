package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/styleoracle/internal/client/api"
	"github.com/dmitrijs2005/styleoracle/internal/client/models"
)

// ProfileService reads and upserts the user's style profile.
type ProfileService interface {
	// Get returns api.ErrNotFound (wrapped) when no profile exists yet.
	Get(ctx context.Context, userID string) (*models.StyleProfile, error)
	// Save updates the profile when exists is true, creates it otherwise.
	Save(ctx context.Context, p *models.StyleProfile, exists bool) error
}

type profileService struct {
	client api.Client
}

func NewProfileService(client api.Client) ProfileService {
	return &profileService{client: client}
}

func (s *profileService) Get(ctx context.Context, userID string) (*models.StyleProfile, error) {
	return s.client.Profile(ctx, userID)
}

func (s *profileService) Save(ctx context.Context, p *models.StyleProfile, exists bool) error {
	if p.UserID == "" {
		return fmt.Errorf("%w: user_id", models.ErrFieldRequired)
	}
	if exists {
		return s.client.UpdateProfile(ctx, p.UserID, p)
	}
	return s.client.CreateProfile(ctx, p)
}
