package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/styleoracle/internal/client/models"
)

func (a *App) printItem(item models.WardrobeItem) {
	fav := " "
	if item.IsFavorite {
		fav = "*"
	}
	fmt.Fprintf(a.out, "  [%s] %s  %s (%s, %s, %s)\n",
		fav, item.ID, item.Name, item.Category, item.Color, item.Season)
}

// loadWardrobe fetches the full collection and replaces the cache. On
// failure the previous cache (if any) stays in place.
func (a *App) loadWardrobe(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		return err
	}
	items, err := a.wardrobe.List(ctx, user.ID)
	if err != nil {
		return err
	}
	a.items = items
	a.itemsLoaded = true
	return nil
}

// Wardrobe lists the cached collection, fetching it first if this is the
// initial visit. The listing can be narrowed to one category; the cache
// always holds the full collection. Use 'refresh' to force a re-fetch.
func (a *App) Wardrobe(ctx context.Context) error {
	category, err := getSimpleText(a.reader, "Filter by category (optional, empty for all)", a.out)
	if err != nil {
		return err
	}

	reqCtx, cancel := a.screenContext(ctx)
	defer cancel()

	if !a.itemsLoaded {
		if err := a.loadWardrobe(reqCtx); err != nil {
			a.reportError(ctx, "Wardrobe", err)
			return err
		}
	}

	items := a.items
	if category != "" {
		items = filterByCategory(a.items, category)
	}

	if len(items) == 0 {
		if category != "" {
			fmt.Fprintf(a.out, "No items in category %q.\n", category)
		} else {
			fmt.Fprintln(a.out, "Your wardrobe is empty. Use 'additem' to add something.")
		}
		return nil
	}

	fmt.Fprintf(a.out, "Wardrobe (%d item(s), * marks favorites):\n", len(items))
	for _, item := range items {
		a.printItem(item)
	}
	return nil
}

func filterByCategory(items []models.WardrobeItem, category string) []models.WardrobeItem {
	var out []models.WardrobeItem
	for _, item := range items {
		if strings.EqualFold(item.Category, category) {
			out = append(out, item)
		}
	}
	return out
}

// AddItem collects the item fields, validates them locally and uploads the
// item, optionally with a photo. A successful add reloads the whole
// collection so the cache carries the server-assigned fields.
func (a *App) AddItem(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Item name", a.out)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category (e.g. top, bottom, shoes)", a.out)
	if err != nil {
		return err
	}
	color, err := getSimpleText(a.reader, "Color", a.out)
	if err != nil {
		return err
	}
	seasonText, err := getSimpleText(a.reader, "Season (spring/summer/fall/winter/all, empty for all)", a.out)
	if err != nil {
		return err
	}
	season, err := models.ParseSeason(seasonText)
	if err != nil {
		a.reportError(ctx, "Add item", err)
		return err
	}
	imagePath, err := getSimpleText(a.reader, "Photo file path (optional, empty to skip)", a.out)
	if err != nil {
		return err
	}

	form := models.NewWardrobeItem{
		Name:      name,
		Category:  category,
		Color:     color,
		Season:    season,
		ImagePath: imagePath,
	}

	reqCtx, cancel := a.screenContext(ctx)
	defer cancel()

	if err := a.wardrobe.Add(reqCtx, form); err != nil {
		a.reportError(ctx, "Add item", err)
		return err
	}

	if err := a.loadWardrobe(reqCtx); err != nil {
		a.reportError(ctx, "Wardrobe reload", err)
		return err
	}

	fmt.Fprintln(a.out, "Item added to your wardrobe!")
	return nil
}

// DeleteItem removes an item on the server and splices it out of the cache
// only after the server confirmed the deletion.
func (a *App) DeleteItem(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Item id to delete", a.out)
	if err != nil {
		return err
	}

	reqCtx, cancel := a.screenContext(ctx)
	defer cancel()

	if err := a.wardrobe.Delete(reqCtx, id); err != nil {
		a.reportError(ctx, "Delete item", err)
		return err
	}

	items := make([]models.WardrobeItem, 0, len(a.items))
	for _, item := range a.items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	a.items = items

	fmt.Fprintln(a.out, "Item deleted.")
	return nil
}

// ToggleFavorite flips the favorite flag on the server, then mirrors the
// flip in the cache.
func (a *App) ToggleFavorite(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Item id to toggle favorite", a.out)
	if err != nil {
		return err
	}

	reqCtx, cancel := a.screenContext(ctx)
	defer cancel()

	if err := a.wardrobe.ToggleFavorite(reqCtx, id); err != nil {
		a.reportError(ctx, "Toggle favorite", err)
		return err
	}

	for i := range a.items {
		if a.items[i].ID == id {
			a.items[i].IsFavorite = !a.items[i].IsFavorite
		}
	}

	fmt.Fprintln(a.out, "Favorite toggled.")
	return nil
}

// Refresh force-reloads the wardrobe and the suggestion history. A failed
// reload keeps showing the stale cache.
func (a *App) Refresh(ctx context.Context) error {
	reqCtx, cancel := a.screenContext(ctx)
	defer cancel()

	if err := a.loadWardrobe(reqCtx); err != nil {
		a.reportError(ctx, "Refresh", err)
		return err
	}
	if err := a.loadSuggestions(reqCtx); err != nil {
		a.reportError(ctx, "Refresh", err)
		return err
	}

	fmt.Fprintf(a.out, "Refreshed: %d item(s), %d suggestion(s).\n", len(a.items), len(a.suggestions))
	return nil
}
