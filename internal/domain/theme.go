package domain

// ColorTheme holds the accent colors for one named theme.
type ColorTheme struct {
	Primary     string
	PrimaryDark string
	Secondary   string
}

// DefaultThemeName is the theme applied when none is configured.
const DefaultThemeName = "blue"

var colorThemes = map[string]ColorTheme{
	"blue":    {Primary: "#6366f1", PrimaryDark: "#4f46e5", Secondary: "#8b5cf6"},
	"emerald": {Primary: "#10b981", PrimaryDark: "#059669", Secondary: "#34d399"},
	"sunset":  {Primary: "#f59e0b", PrimaryDark: "#d97706", Secondary: "#f97316"},
	"rose":    {Primary: "#ec4899", PrimaryDark: "#db2777", Secondary: "#f472b6"},
	"purple":  {Primary: "#8b5cf6", PrimaryDark: "#7c3aed", Secondary: "#a855f7"},
	"teal":    {Primary: "#14b8a6", PrimaryDark: "#0d9488", Secondary: "#06b6d4"},
	"red":     {Primary: "#ef4444", PrimaryDark: "#dc2626", Secondary: "#f87171"},
	"dark":    {Primary: "#374151", PrimaryDark: "#1f2937", Secondary: "#6b7280"},
}

// ThemeByName returns the named theme, or the default theme and false for
// unknown names.
func ThemeByName(name string) (ColorTheme, bool) {
	theme, ok := colorThemes[name]
	if !ok {
		return colorThemes[DefaultThemeName], false
	}
	return theme, true
}

// ThemeNames returns all known theme keys in stable order.
func ThemeNames() []string {
	return []string{"blue", "emerald", "sunset", "rose", "purple", "teal", "red", "dark"}
}
