package core

// Color is the foreground colour of a screen cell.
// Values map to ANSI 256-colour codes in the platform layer.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightBlue
	ColorBrightYellow
	ColorOrange
	ColorPink
	ColorGray
)

// colorNames lists the names accepted in config files.
var colorNames = map[string]Color{
	"default":       ColorDefault,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"blue":          ColorBlue,
	"magenta":       ColorMagenta,
	"cyan":          ColorCyan,
	"white":         ColorWhite,
	"bright_blue":   ColorBrightBlue,
	"bright_yellow": ColorBrightYellow,
	"orange":        ColorOrange,
	"pink":          ColorPink,
	"gray":          ColorGray,
}

// ParseColor looks up a colour by its config name.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}
