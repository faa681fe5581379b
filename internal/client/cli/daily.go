package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/styleoracle/internal/client/models"
)

// StyleMe collects the daily input and requests a styling suggestion.
// The required fields are checked before anything touches the network,
// so an incomplete form never produces a request.
func (a *App) StyleMe(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		a.reportError(ctx, "Style request", err)
		return err
	}

	mood, err := getSimpleText(a.reader, "How are you feeling today (mood)?", a.out)
	if err != nil {
		return err
	}
	occasion, err := getSimpleText(a.reader, "What's the occasion?", a.out)
	if err != nil {
		return err
	}
	weather, err := getSimpleText(a.reader, "What's the weather like?", a.out)
	if err != nil {
		return err
	}
	itemFocus, err := getSimpleText(a.reader, "Item to build the outfit around (optional)", a.out)
	if err != nil {
		return err
	}
	notes, err := getMultiline(a.reader, "Anything else to consider?", a.out)
	if err != nil {
		return err
	}

	input := models.DailyInput{
		UserID:    user.ID,
		Mood:      mood,
		Occasion:  occasion,
		Weather:   weather,
		ItemFocus: itemFocus,
		Notes:     notes,
	}
	if err := input.Validate(); err != nil {
		a.reportError(ctx, "Style request", err)
		return err
	}

	reqCtx, cancel := a.screenContext(ctx)
	defer cancel()

	suggestion, err := a.styling.RequestSuggestion(reqCtx, input)
	if err != nil {
		a.reportError(ctx, "Style request", err)
		return err
	}

	fmt.Fprintf(a.out, "\nYour styling suggestion:\n%s\n", suggestion.Content)

	// The history on the server now has one more entry.
	a.suggestionsLoaded = false
	return nil
}
