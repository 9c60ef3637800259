package services

// Theme is a chat's display theme tag. Styling is a lookup from tag to
// tokens, so renderers never branch on the tag themselves.
type Theme string

const (
	ThemeDefault   Theme = "default"
	ThemeLight     Theme = "light"
	ThemeDark      Theme = "dark"
	ThemeNCState   Theme = "ncstate"
	ThemeVaporwave Theme = "vaporwave"
)

// Themes lists the selectable themes in menu order.
var Themes = []Theme{ThemeDefault, ThemeLight, ThemeDark, ThemeNCState, ThemeVaporwave}

// StyleTokens are the rendering atoms a theme controls.
type StyleTokens struct {
	Bullet    string
	Pending   string
	Fulfilled string
	PickedUp  string
	Canceled  string
	Divider   string
}

var styles = map[Theme]StyleTokens{
	ThemeDefault:   {Bullet: "•", Pending: "⏳", Fulfilled: "✅", PickedUp: "📦", Canceled: "❌", Divider: "—"},
	ThemeLight:     {Bullet: "◦", Pending: "🕓", Fulfilled: "☑️", PickedUp: "🤍", Canceled: "✖️", Divider: "–"},
	ThemeDark:      {Bullet: "▪️", Pending: "🌑", Fulfilled: "🌕", PickedUp: "🖤", Canceled: "✖️", Divider: "—"},
	ThemeNCState:   {Bullet: "🐺", Pending: "⏳", Fulfilled: "🔴", PickedUp: "🎓", Canceled: "❌", Divider: "—"},
	ThemeVaporwave: {Bullet: "🌴", Pending: "🌅", Fulfilled: "💜", PickedUp: "🛼", Canceled: "🚫", Divider: "~"},
}

// StyleFor resolves a theme tag to its tokens, falling back to the
// default set for unknown tags.
func StyleFor(t Theme) StyleTokens {
	if s, ok := styles[t]; ok {
		return s
	}
	return styles[ThemeDefault]
}

// StatusGlyph picks the glyph for an order status.
func (s StyleTokens) StatusGlyph(status string) string {
	switch status {
	case "pending":
		return s.Pending
	case "fulfilled":
		return s.Fulfilled
	case "picked up":
		return s.PickedUp
	case "canceled":
		return s.Canceled
	default:
		return s.Bullet
	}
}
