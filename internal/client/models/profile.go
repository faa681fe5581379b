package models

import "time"

// Appearance holds the physical-appearance section of a style profile.
type Appearance struct {
	SkinTone      string `json:"skin_tone"`
	ContrastLevel string `json:"contrast_level"`
	Undertone     string `json:"undertone"`
}

// StyleIdentity holds the style-preference section of a style profile.
type StyleIdentity struct {
	FaceDetailPreference string   `json:"face_detail_preference"`
	TextureNotes         string   `json:"texture_notes"`
	ColorPreference      string   `json:"color_pref"`
	StyleConstraints     string   `json:"style_constraints"`
	Archetypes           []string `json:"archetypes,omitempty"`
	AspirationalStyle    string   `json:"aspirational_style"`
}

// Lifestyle holds the lifestyle section of a style profile.
type Lifestyle struct {
	Mobility         string `json:"mobility"`
	Climate          string `json:"climate"`
	LifeEvent        string `json:"life_event"`
	DressFormality   string `json:"dress_formality"`
	WardrobePhase    string `json:"wardrobe_phase"`
	ShoppingBehavior string `json:"shopping_behavior"`
	BudgetPreference string `json:"budget_preference"`
}

// StyleProfile is one user's style profile: exactly three typed sections.
// Access is always through the concrete section structs, never through a
// runtime field name.
type StyleProfile struct {
	UserID        string        `json:"user_id"`
	Appearance    Appearance    `json:"appearance"`
	StyleIdentity StyleIdentity `json:"style_identity"`
	Lifestyle     Lifestyle     `json:"lifestyle"`
	Archetype     string        `json:"style_archetype,omitempty"`
	CreatedAt     time.Time     `json:"created_at,omitzero"`
}

// One explicit update function per section.

func (p *StyleProfile) SetAppearance(a Appearance)       { p.Appearance = a }
func (p *StyleProfile) SetStyleIdentity(s StyleIdentity) { p.StyleIdentity = s }
func (p *StyleProfile) SetLifestyle(l Lifestyle)         { p.Lifestyle = l }
