package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/styleoracle/internal/client/api"
	"github.com/dmitrijs2005/styleoracle/internal/client/models"
)

// Profile shows the current style profile section by section.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		a.reportError(ctx, "Profile", err)
		return err
	}

	reqCtx, cancel := a.screenContext(ctx)
	defer cancel()

	p, err := a.profile.Get(reqCtx, user.ID)
	if errors.Is(err, api.ErrNotFound) {
		fmt.Fprintln(a.out, "No style profile yet. Use 'editprofile' to create one.")
		return nil
	}
	if err != nil {
		a.reportError(ctx, "Profile", err)
		return err
	}

	fmt.Fprintln(a.out, "Appearance:")
	fmt.Fprintf(a.out, "  skin tone: %s\n  contrast: %s\n  undertone: %s\n",
		p.Appearance.SkinTone, p.Appearance.ContrastLevel, p.Appearance.Undertone)

	fmt.Fprintln(a.out, "Style identity:")
	fmt.Fprintf(a.out, "  color preference: %s\n  constraints: %s\n  aspirational style: %s\n",
		p.StyleIdentity.ColorPreference, p.StyleIdentity.StyleConstraints, p.StyleIdentity.AspirationalStyle)
	if len(p.StyleIdentity.Archetypes) > 0 {
		fmt.Fprintf(a.out, "  archetypes: %s\n", strings.Join(p.StyleIdentity.Archetypes, ", "))
	}

	fmt.Fprintln(a.out, "Lifestyle:")
	fmt.Fprintf(a.out, "  climate: %s\n  formality: %s\n  budget: %s\n",
		p.Lifestyle.Climate, p.Lifestyle.DressFormality, p.Lifestyle.BudgetPreference)

	return nil
}

// EditProfile walks the user through each section, keeping current values on
// empty input, and saves the result. A missing profile is created, an
// existing one updated.
func (a *App) EditProfile(ctx context.Context) error {
	user, err := a.requireUser()
	if err != nil {
		a.reportError(ctx, "Edit profile", err)
		return err
	}

	reqCtx, cancel := a.screenContext(ctx)
	defer cancel()

	p, err := a.profile.Get(reqCtx, user.ID)
	exists := true
	if errors.Is(err, api.ErrNotFound) {
		p = &models.StyleProfile{}
		exists = false
	} else if err != nil {
		a.reportError(ctx, "Edit profile", err)
		return err
	}
	p.UserID = user.ID

	appearance, err := a.editAppearance(p.Appearance)
	if err != nil {
		return err
	}
	p.SetAppearance(appearance)

	identity, err := a.editStyleIdentity(p.StyleIdentity)
	if err != nil {
		return err
	}
	p.SetStyleIdentity(identity)

	lifestyle, err := a.editLifestyle(p.Lifestyle)
	if err != nil {
		return err
	}
	p.SetLifestyle(lifestyle)

	if err := a.profile.Save(reqCtx, p, exists); err != nil {
		a.reportError(ctx, "Edit profile", err)
		return err
	}

	fmt.Fprintln(a.out, "Profile saved.")
	return nil
}

func (a *App) editAppearance(cur models.Appearance) (models.Appearance, error) {
	fmt.Fprintln(a.out, "-- Appearance (press Enter to keep the current value) --")

	var err error
	if cur.SkinTone, err = getTextDefault(a.reader, "Skin tone", cur.SkinTone, a.out); err != nil {
		return cur, err
	}
	if cur.ContrastLevel, err = getTextDefault(a.reader, "Contrast level", cur.ContrastLevel, a.out); err != nil {
		return cur, err
	}
	if cur.Undertone, err = getTextDefault(a.reader, "Undertone", cur.Undertone, a.out); err != nil {
		return cur, err
	}
	return cur, nil
}

func (a *App) editStyleIdentity(cur models.StyleIdentity) (models.StyleIdentity, error) {
	fmt.Fprintln(a.out, "-- Style identity --")

	var err error
	if cur.ColorPreference, err = getTextDefault(a.reader, "Color preference", cur.ColorPreference, a.out); err != nil {
		return cur, err
	}
	if cur.StyleConstraints, err = getTextDefault(a.reader, "Style constraints", cur.StyleConstraints, a.out); err != nil {
		return cur, err
	}
	if cur.AspirationalStyle, err = getTextDefault(a.reader, "Aspirational style", cur.AspirationalStyle, a.out); err != nil {
		return cur, err
	}

	archetypes, err := getTextDefault(a.reader, "Archetypes (comma separated)",
		strings.Join(cur.Archetypes, ", "), a.out)
	if err != nil {
		return cur, err
	}
	cur.Archetypes = splitList(archetypes)
	return cur, nil
}

func (a *App) editLifestyle(cur models.Lifestyle) (models.Lifestyle, error) {
	fmt.Fprintln(a.out, "-- Lifestyle --")

	var err error
	if cur.Climate, err = getTextDefault(a.reader, "Climate", cur.Climate, a.out); err != nil {
		return cur, err
	}
	if cur.DressFormality, err = getTextDefault(a.reader, "Dress formality", cur.DressFormality, a.out); err != nil {
		return cur, err
	}
	if cur.WardrobePhase, err = getTextDefault(a.reader, "Wardrobe phase", cur.WardrobePhase, a.out); err != nil {
		return cur, err
	}
	if cur.BudgetPreference, err = getTextDefault(a.reader, "Budget preference", cur.BudgetPreference, a.out); err != nil {
		return cur, err
	}
	return cur, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
