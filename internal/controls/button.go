// Package controls provides the presentational control primitives:
// button, text input, and the user/wallet profile panel. Controls hold
// no domain state of their own; they format host-supplied props and
// forward intent through callbacks.
package controls

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/opencode-ai/lume/internal/a11y"
	"github.com/opencode-ai/lume/internal/format"
	"github.com/opencode-ai/lume/internal/theme"
)

// Variant selects a button's style token. It has no behavioral effect.
type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
)

// StyleToken maps the variant 1:1 to its class token.
func (v Variant) StyleToken() string {
	if v == "" {
		return "btn-" + string(VariantPrimary)
	}
	return "btn-" + string(v)
}

// LoadingIndicator is the text exposed in the accessible name area
// while a button is loading.
const LoadingIndicator = "Loading..."

// Button forwards click intent to the host while it is interactive.
type Button struct {
	ID        string
	Label     string
	AriaLabel string
	Variant   Variant
	Disabled  bool
	Loading   bool
	OnClick   func()
}

// IsInteractive reports whether the button accepts clicks.
func (b Button) IsInteractive() bool {
	return !b.Disabled && !b.Loading
}

// Click forwards the click intent iff the button is interactive. It
// reports whether the intent was forwarded.
func (b Button) Click() bool {
	if !b.IsInteractive() || b.OnClick == nil {
		return false
	}
	b.OnClick()
	return true
}

// AccessibleName resolves the button's name, including the loading
// indicator while loading. An empty name is valid.
func (b Button) AccessibleName() string {
	name := format.ButtonAccessibleName(b.Label, b.AriaLabel)
	if b.Loading {
		if name == "" {
			return LoadingIndicator
		}
		return name + " " + LoadingIndicator
	}
	return name
}

// Describe reports the button's accessible node. A button renders and
// is queryable even with an empty label.
func (b Button) Describe() a11y.Node {
	return a11y.Node{
		Role:     a11y.RoleButton,
		Name:     b.AccessibleName(),
		ID:       b.ID,
		Disabled: !b.IsInteractive(),
	}
}

// View renders the button with its variant style.
func (b Button) View(styleSet theme.Styles, focused bool) string {
	label := b.displayLabel()

	style := b.variantStyle(styleSet)
	if focused && b.IsInteractive() {
		style = style.Copy().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(styleSet.Palette.Tokens.Focus))
	}
	return style.Render(label)
}

// displayLabel is the visible label text, following the same loading
// rules as AccessibleName.
func (b Button) displayLabel() string {
	label := b.Label
	if b.Loading {
		if label == "" {
			return LoadingIndicator
		}
		return label + " " + LoadingIndicator
	}
	if label == "" {
		return " " // keep an empty-labelled button visible and clickable
	}
	return label
}

func (b Button) variantStyle(styleSet theme.Styles) lipgloss.Style {
	if !b.IsInteractive() {
		return styleSet.ButtonDisabled
	}
	if b.Variant == VariantSecondary {
		return styleSet.ButtonSecondary
	}
	return styleSet.ButtonPrimary
}
