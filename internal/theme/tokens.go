package theme

// Tokens defines the semantic color roles for the UI.
type Tokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Focus      string
	Success    string
	Warning    string
	Error      string
	Info       string
}

// Palette bundles a token set with the theme it belongs to.
type Palette struct {
	Theme  Theme
	Tokens Tokens
}

// DarkPalette is the baseline dark palette.
var DarkPalette = Palette{
	Theme: Dark,
	Tokens: Tokens{
		Background: "#0B0F14",
		Panel:      "#121821",
		Text:       "#E6EDF3",
		TextMuted:  "#8B9AAE",
		Border:     "#223043",
		Accent:     "#5B8DEF",
		Focus:      "#7AA2F7",
		Success:    "#3FB950",
		Warning:    "#D29922",
		Error:      "#F85149",
		Info:       "#58A6FF",
	},
}

// LightPalette is the baseline light palette.
var LightPalette = Palette{
	Theme: Light,
	Tokens: Tokens{
		Background: "#FFFFFF",
		Panel:      "#F6F8FA",
		Text:       "#1F2328",
		TextMuted:  "#59636E",
		Border:     "#D1D9E0",
		Accent:     "#0969DA",
		Focus:      "#0550AE",
		Success:    "#1A7F37",
		Warning:    "#9A6700",
		Error:      "#CF222E",
		Info:       "#0969DA",
	},
}

// Palettes lists available palettes by theme.
var Palettes = map[Theme]Palette{
	Dark:  DarkPalette,
	Light: LightPalette,
}
