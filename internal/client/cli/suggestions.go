package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/styleoracle/internal/client/models"
)

func (a *App) loadSuggestions(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}
	suggestions, err := a.styling.List(ctx, user.ID)
	if err != nil {
		return err
	}
	a.suggestions = suggestions
	a.suggestionsLoaded = true
	return nil
}

// Suggestions shows the styling suggestion history, newest first.
func (a *App) Suggestions(ctx context.Context) error {
	reqCtx, cancel := a.screenContext(ctx)
	defer cancel()

	if !a.suggestionsLoaded {
		if err := a.loadSuggestions(reqCtx); err != nil {
			a.reportError(ctx, "Suggestions", err)
			return err
		}
	}

	if len(a.suggestions) == 0 {
		fmt.Fprintln(a.out, "No suggestions yet, try 'styleme'.")
		return nil
	}

	for _, s := range a.suggestions {
		fmt.Fprintf(a.out, "%s  (%s)\n  %s\n", s.ID, s.CreatedAt.Format("2006-01-02 15:04"), s.Content)
	}
	return nil
}

// Feedback submits a 1 to 5 rating with an optional comment for a
// suggestion. One submission per suggestion; the rating is validated
// before the request is sent.
func (a *App) Feedback(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Suggestion id", a.out)
	if err != nil {
		return err
	}
	if _, done := a.feedbackSent[id]; done {
		fmt.Fprintln(a.out, "Feedback for this suggestion was already submitted.")
		return nil
	}
	ratingText, err := getSimpleText(a.reader, "Rating (1-5)", a.out)
	if err != nil {
		return err
	}
	rating, err := strconv.Atoi(ratingText)
	if err != nil {
		a.reportError(ctx, "Feedback", models.ErrInvalidRating)
		return models.ErrInvalidRating
	}
	comment, err := getSimpleText(a.reader, "Comment (optional)", a.out)
	if err != nil {
		return err
	}

	fb := models.Feedback{Rating: rating, Comment: comment}
	if err := fb.Validate(); err != nil {
		a.reportError(ctx, "Feedback", err)
		return err
	}

	reqCtx, cancel := a.screenContext(ctx)
	defer cancel()

	if err := a.styling.SubmitFeedback(reqCtx, id, fb); err != nil {
		a.reportError(ctx, "Feedback", err)
		return err
	}

	if a.feedbackSent == nil {
		a.feedbackSent = make(map[string]struct{})
	}
	a.feedbackSent[id] = struct{}{}

	fmt.Fprintln(a.out, "Thanks for your feedback!")
	return nil
}
