package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/styleoracle/internal/client/api"
	"github.com/dmitrijs2005/styleoracle/internal/client/models"
)

// StylingService covers suggestion history, daily styling requests and
// suggestion feedback.
type StylingService interface {
	List(ctx context.Context, userID string) ([]models.StylingSuggestion, error)
	// RequestSuggestion validates the input locally; an incomplete form
	// never reaches the network.
	RequestSuggestion(ctx context.Context, input models.DailyInput) (*models.StylingSuggestion, error)
	SubmitFeedback(ctx context.Context, suggestionID string, fb models.Feedback) error
}

type stylingService struct {
	client api.Client
}

func NewStylingService(client api.Client) StylingService {
	return &stylingService{client: client}
}

func (s *stylingService) List(ctx context.Context, userID string) ([]models.StylingSuggestion, error) {
	return s.client.Suggestions(ctx, userID)
}

func (s *stylingService) RequestSuggestion(ctx context.Context, input models.DailyInput) (*models.StylingSuggestion, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	suggestion, err := s.client.SubmitDailyInput(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("daily input: %w", err)
	}
	return suggestion, nil
}

func (s *stylingService) SubmitFeedback(ctx context.Context, suggestionID string, fb models.Feedback) error {
	if err := fb.Validate(); err != nil {
		return err
	}
	if err := s.client.SubmitFeedback(ctx, suggestionID, fb); err != nil {
		return fmt.Errorf("feedback: %w", err)
	}
	return nil
}
