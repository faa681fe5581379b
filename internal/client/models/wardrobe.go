package models

import (
	"errors"
	"fmt"
	"time"
)

// Season classifies a wardrobe item by the season it suits.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
	SeasonAll    Season = "all"
)

var ErrUnknownSeason = errors.New("unknown season")

// ParseSeason maps a user-supplied string onto a Season. An empty string
// defaults to SeasonAll.
func ParseSeason(s string) (Season, error) {
	switch Season(s) {
	case SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter, SeasonAll:
		return Season(s), nil
	case "":
		return SeasonAll, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSeason, s)
	}
}

// WardrobeItem is a single item of clothing as the backend reports it.
type WardrobeItem struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	Name       string     `json:"name"`
	Category   string     `json:"category"`
	Color      string     `json:"color,omitempty"`
	StyleTags  []string   `json:"style_tags,omitempty"`
	Image      string     `json:"image,omitempty"`
	Season     Season     `json:"season"`
	IsFavorite bool       `json:"is_favorite"`
	AddedAt    time.Time  `json:"added_at"`
	LastUsed   *time.Time `json:"last_used,omitempty"`
}

// NewWardrobeItem is the client-side form for creating an item. ImagePath,
// when set, points at a local file uploaded with the multipart request; the
// server assigns the stored image reference.
type NewWardrobeItem struct {
	Name      string
	Category  string
	Color     string
	Season    Season
	ImagePath string
}

var ErrFieldRequired = errors.New("field required")

// Validate checks the fields the backend rejects anyway, so the screen can
// refuse to dispatch an obviously incomplete form.
func (n NewWardrobeItem) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("%w: name", ErrFieldRequired)
	}
	if n.Category == "" {
		return fmt.Errorf("%w: category", ErrFieldRequired)
	}
	return nil
}
