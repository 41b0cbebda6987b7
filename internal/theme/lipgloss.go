package theme

import "github.com/charmbracelet/lipgloss"

// Styles contains lipgloss styles derived from theme tokens.
type Styles struct {
	Palette Palette

	Title  lipgloss.Style
	Text   lipgloss.Style
	Muted  lipgloss.Style
	Accent lipgloss.Style
	Panel  lipgloss.Style
	Border lipgloss.Style
	Focus  lipgloss.Style
	Error  lipgloss.Style
	Info   lipgloss.Style

	ButtonPrimary   lipgloss.Style
	ButtonSecondary lipgloss.Style
	ButtonDisabled  lipgloss.Style
	InputBox        lipgloss.Style
	InputError      lipgloss.Style
	Label           lipgloss.Style
	Overlay         lipgloss.Style
	Dialog          lipgloss.Style
}

// DefaultStyles builds styles from the dark palette.
func DefaultStyles() Styles {
	return BuildStyles(Dark)
}

// BuildStyles converts a theme's tokens into lipgloss styles. An
// unknown theme gets the dark palette; validation belongs to Store.Set
// and format.ThemeClassName, not the style builder.
func BuildStyles(t Theme) Styles {
	palette, ok := Palettes[t]
	if !ok {
		palette = DarkPalette
	}
	tokens := palette.Tokens

	return Styles{
		Palette: palette,
		Title:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Bold(true),
		Text:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Accent:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Accent)),
		Panel:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Panel)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Border)),
		Focus:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Focus)).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Info)),

		ButtonPrimary:   lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Background)).Background(lipgloss.Color(tokens.Accent)).Padding(0, 2).Bold(true),
		ButtonSecondary: lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Panel)).Padding(0, 2).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)),
		ButtonDisabled:  lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)).Background(lipgloss.Color(tokens.Panel)).Padding(0, 2),
		InputBox:        lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Border)).Padding(0, 1),
		InputError:      lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Error)).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(tokens.Error)).Padding(0, 1),
		Label:           lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)).Bold(true),
		Overlay:         lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.TextMuted)),
		Dialog:          lipgloss.NewStyle().Foreground(lipgloss.Color(tokens.Text)).Background(lipgloss.Color(tokens.Panel)).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(tokens.Focus)).Padding(1, 2),
	}
}
