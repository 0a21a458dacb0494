package sgr

import "strconv"

// colorKind discriminates the Color variants. The zero kind is "unset",
// which makes the zero Color mean "inherit the terminal default".
type colorKind uint8

const (
	colorUnset colorKind = iota
	colorNamed
	colorAnsi256
	colorRGB
)

// Color is one of the eight named base colors, an 8-bit palette index, or a
// 24-bit RGB triple. Colors are comparable copy-cheap values; the zero value
// is unset. Channel and index fields are uint8, so every representable Color
// is valid and no range checking exists anywhere in the package.
type Color struct {
	kind    colorKind
	index   uint8 // named color 0-7, or palette index
	r, g, b uint8
}

// The named base colors, in SGR order (foreground codes 30-37).
var (
	Black   = Color{kind: colorNamed, index: 0}
	Red     = Color{kind: colorNamed, index: 1}
	Green   = Color{kind: colorNamed, index: 2}
	Yellow  = Color{kind: colorNamed, index: 3}
	Blue    = Color{kind: colorNamed, index: 4}
	Magenta = Color{kind: colorNamed, index: 5}
	Cyan    = Color{kind: colorNamed, index: 6}
	White   = Color{kind: colorNamed, index: 7}
)

// Ansi256 returns the 256-color palette entry with the given index.
func Ansi256(n uint8) Color {
	return Color{kind: colorAnsi256, index: n}
}

// RGB returns a 24-bit true-color value.
func RGB(r, g, b uint8) Color {
	return Color{kind: colorRGB, r: r, g: g, b: b}
}

// IsSet reports whether c holds a color, as opposed to the zero
// "inherit terminal default" value.
func (c Color) IsSet() bool {
	return c.kind != colorUnset
}

var colorNames = [8]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
}

// String returns a human readable form, e.g. "red", "ansi256(245)" or
// "rgb(255,136,0)". Unset colors read as "default".
func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return colorNames[c.index]
	case colorAnsi256:
		return "ansi256(" + strconv.Itoa(int(c.index)) + ")"
	case colorRGB:
		return "rgb(" + strconv.Itoa(int(c.r)) + "," + strconv.Itoa(int(c.g)) + "," + strconv.Itoa(int(c.b)) + ")"
	}
	return "default"
}

// sequence renders the complete escape fragment selecting c as foreground or
// background. When intense is set, named colors are redirected through their
// bright 256-color index (black=8 .. white=15); palette and RGB colors are
// unaffected by intense.
func (c Color) sequence(background, intense bool) string {
	extended, direct := "38", 30
	if background {
		extended, direct = "48", 40
	}
	switch c.kind {
	case colorNamed:
		if intense {
			return esc + extended + ";5;" + strconv.Itoa(int(c.index)+8) + "m"
		}
		return esc + strconv.Itoa(direct+int(c.index)) + "m"
	case colorAnsi256:
		return esc + extended + ";5;" + strconv.Itoa(int(c.index)) + "m"
	case colorRGB:
		return esc + extended + ";2;" +
			strconv.Itoa(int(c.r)) + ";" +
			strconv.Itoa(int(c.g)) + ";" +
			strconv.Itoa(int(c.b)) + "m"
	}
	return ""
}
