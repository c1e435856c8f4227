package fichecompiler

import "sort"

// RGB is a 0-255 color triple.
type RGB struct {
	R, G, B int
}

// Palette groups the color roles shared by every theme.
type Palette struct {
	Primary   RGB
	Secondary RGB
	Accent    RGB
	Text      RGB
	BgLight   RGB
}

// Theme draws the themed building blocks of a fiche. Implementations go
// through the compiler's primitives so page geometry, fonts and the phase
// state stay in one place.
type Theme interface {
	Name() string
	Palette() Palette
	PageHeader(c *FicheCompiler)
	SectionHeading(c *FicheCompiler, title string)
	PhaseHeading(c *FicheCompiler, title, minutes string)
	Bullet(c *FicheCompiler, text string)
	KeyValue(c *FicheCompiler, label, value string)
}

// GutterTheme marks a theme that reserves a side column for phase durations.
// Bullets under such a theme always indent by GutterWidth, whether or not a
// label is drawn, so body text stays aligned.
type GutterTheme interface {
	Theme
	GutterColor() RGB
	GutterWidth() float64
}

// DefaultTheme is used when a requested theme name is not registered.
const DefaultTheme = "teal"

var themes = map[string]Theme{
	"teal":  tealTheme{},
	"pro":   proTheme{},
	"study": studyTheme{},
}

// ThemeByName returns the registered theme, silently falling back to the
// default for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultTheme]
}

// ThemeNames lists the registered theme names in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
