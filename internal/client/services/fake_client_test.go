package services

import (
	"context"

	"github.com/dmitrijs2005/styleoracle/internal/client/api"
	"github.com/dmitrijs2005/styleoracle/internal/client/models"
)

// fakeAPI implements api.Client and records every interaction.
type fakeAPI struct {
	token        string
	tokenCleared bool

	loginResp  *api.AuthResponse
	loginErr   error
	loginCalls int

	registerErr   error
	registerCalls int

	profile     *models.StyleProfile
	profileErr  error
	createdProf *models.StyleProfile
	updatedID   string
	updatedProf *models.StyleProfile

	items     []models.WardrobeItem
	itemsErr  error
	listCalls int

	added     []models.NewWardrobeItem
	addErr    error
	deleted   []string
	deleteErr error
	toggled   []string
	toggleErr error

	dailyCalls      int
	dailySuggestion *models.StylingSuggestion
	dailyErr        error

	suggestions    []models.StylingSuggestion
	suggestionsErr error

	feedbackCalls int
	feedbackErr   error
}

var _ api.Client = (*fakeAPI)(nil)

func (f *fakeAPI) SetToken(token string) { f.token = token }
func (f *fakeAPI) ClearToken()           { f.token = ""; f.tokenCleared = true }

func (f *fakeAPI) Login(_ context.Context, email, password string) (*api.AuthResponse, error) {
	f.loginCalls++
	return f.loginResp, f.loginErr
}

func (f *fakeAPI) Register(_ context.Context, email, password string) error {
	f.registerCalls++
	return f.registerErr
}

func (f *fakeAPI) Profile(_ context.Context, userID string) (*models.StyleProfile, error) {
	return f.profile, f.profileErr
}

func (f *fakeAPI) CreateProfile(_ context.Context, p *models.StyleProfile) error {
	f.createdProf = p
	return nil
}

func (f *fakeAPI) UpdateProfile(_ context.Context, userID string, p *models.StyleProfile) error {
	f.updatedID, f.updatedProf = userID, p
	return nil
}

func (f *fakeAPI) WardrobeItems(_ context.Context, userID string) ([]models.WardrobeItem, error) {
	f.listCalls++
	return f.items, f.itemsErr
}

func (f *fakeAPI) AddWardrobeItem(_ context.Context, item models.NewWardrobeItem) (*models.WardrobeItem, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}
	f.added = append(f.added, item)
	return &models.WardrobeItem{ID: "server-assigned"}, nil
}

func (f *fakeAPI) DeleteWardrobeItem(_ context.Context, itemID string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, itemID)
	return nil
}

func (f *fakeAPI) ToggleFavorite(_ context.Context, itemID string) error {
	if f.toggleErr != nil {
		return f.toggleErr
	}
	f.toggled = append(f.toggled, itemID)
	return nil
}

func (f *fakeAPI) SubmitDailyInput(_ context.Context, input models.DailyInput) (*models.StylingSuggestion, error) {
	f.dailyCalls++
	return f.dailySuggestion, f.dailyErr
}

func (f *fakeAPI) Suggestions(_ context.Context, userID string) ([]models.StylingSuggestion, error) {
	return f.suggestions, f.suggestionsErr
}

func (f *fakeAPI) SubmitFeedback(_ context.Context, suggestionID string, fb models.Feedback) error {
	f.feedbackCalls++
	return f.feedbackErr
}
