package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/styleoracle/internal/client/models"
)

const dashboardRecentLimit = 5

// Dashboard fetches the wardrobe and the suggestion history concurrently,
// waits for both and renders a combined overview. Caches are only updated
// for the fetches that succeeded.
func (a *App) Dashboard(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		a.reportError(ctx, "Dashboard", err)
		return err
	}

	reqCtx, cancel := a.screenContext(ctx)
	defer cancel()

	var (
		wg             sync.WaitGroup
		items          []models.WardrobeItem
		suggestions    []models.StylingSuggestion
		itemsErr       error
		suggestionsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		items, itemsErr = a.wardrobe.List(reqCtx, user.ID)
	}()
	go func() {
		defer wg.Done()
		suggestions, suggestionsErr = a.styling.List(reqCtx, user.ID)
	}()
	wg.Wait()

	if itemsErr == nil {
		a.items = items
		a.itemsLoaded = true
	}
	if suggestionsErr == nil {
		a.suggestions = suggestions
		a.suggestionsLoaded = true
	}

	if itemsErr != nil {
		a.reportError(ctx, "Dashboard", itemsErr)
		return itemsErr
	}
	if suggestionsErr != nil {
		a.reportError(ctx, "Dashboard", suggestionsErr)
		return suggestionsErr
	}

	fmt.Fprintf(a.out, "Hello, %s!\n", user.Email)

	if len(suggestions) > 0 {
		fmt.Fprintf(a.out, "\nLatest suggestion:\n  %s\n", suggestions[0].Content)
	} else {
		fmt.Fprintln(a.out, "\nNo styling suggestions yet, try 'styleme'.")
	}

	fmt.Fprintf(a.out, "\nWardrobe: %d item(s)\n", len(items))
	recent := items
	if len(recent) > dashboardRecentLimit {
		recent = recent[:dashboardRecentLimit]
	}
	for _, item := range recent {
		a.printItem(item)
	}

	return nil
}
