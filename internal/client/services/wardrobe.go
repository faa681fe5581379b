package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/styleoracle/internal/client/api"
	"github.com/dmitrijs2005/styleoracle/internal/client/models"
)

// WardrobeService exposes the wardrobe collection for the current user.
//
// Add deliberately discards the record the server returns: the caller must
// re-fetch the collection instead of guessing the server-assigned identity.
type WardrobeService interface {
	List(ctx context.Context, userID string) ([]models.WardrobeItem, error)
	Add(ctx context.Context, item models.NewWardrobeItem) error
	Delete(ctx context.Context, itemID string) error
	ToggleFavorite(ctx context.Context, itemID string) error
}

type wardrobeService struct {
	client api.Client
}

func NewWardrobeService(client api.Client) WardrobeService {
	return &wardrobeService{client: client}
}

func (w *wardrobeService) List(ctx context.Context, userID string) ([]models.WardrobeItem, error) {
	return w.client.WardrobeItems(ctx, userID)
}

func (w *wardrobeService) Add(ctx context.Context, item models.NewWardrobeItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if _, err := w.client.AddWardrobeItem(ctx, item); err != nil {
		return fmt.Errorf("add item: %w", err)
	}
	return nil
}

func (w *wardrobeService) Delete(ctx context.Context, itemID string) error {
	return w.client.DeleteWardrobeItem(ctx, itemID)
}

func (w *wardrobeService) ToggleFavorite(ctx context.Context, itemID string) error {
	return w.client.ToggleFavorite(ctx, itemID)
}
