package models

import (
	"errors"
	"fmt"
	"time"
)

// StylingSuggestion is an outfit suggestion generated by the backend.
// Immutable once created; feedback is append-only on the server side.
type StylingSuggestion struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood,omitempty"`
	Occasion  string    `json:"occasion,omitempty"`
	Weather   string    `json:"weather,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DailyInput is the daily styling request. Mood, Occasion and Weather are
// mandatory; the rest is optional context for the suggestion engine.
type DailyInput struct {
	UserID         string `json:"user_id"`
	Mood           string `json:"mood_today"`
	Occasion       string `json:"occasion"`
	Weather        string `json:"weather"`
	ItemFocus      string `json:"item_focus,omitempty"`
	Notes          string `json:"custom_notes,omitempty"`
	Image          string `json:"image,omitempty"`
	WardrobeItemID string `json:"wardrobe_item_id,omitempty"`
}

// Validate reports the first missing mandatory field. A submission must
// never reach the network while this returns an error.
func (d DailyInput) Validate() error {
	if d.Mood == "" {
		return fmt.Errorf("%w: mood", ErrFieldRequired)
	}
	if d.Occasion == "" {
		return fmt.Errorf("%w: occasion", ErrFieldRequired)
	}
	if d.Weather == "" {
		return fmt.Errorf("%w: weather", ErrFieldRequired)
	}
	return nil
}

// Feedback is the one-shot rating a user attaches to a suggestion.
type Feedback struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

func (f Feedback) Validate() error {
	if f.Rating == 0 {
		return fmt.Errorf("%w: rating", ErrFieldRequired)
	}
	if f.Rating < 1 || f.Rating > 5 {
		return ErrInvalidRating
	}
	return nil
}
