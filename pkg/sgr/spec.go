package sgr

// specKind discriminates the Spec variants.
type specKind uint8

const (
	specReset specKind = iota
	specBold
	specUnderline
	specItalic
	specIntense
	specFg
	specBg
	specNumber
)

// Spec is a single attribute-setting instruction. A sequence of specs folds
// into a Style via Apply or FromSpecs; Reset discards everything applied
// before it.
type Spec struct {
	kind  specKind
	color Color
	code  uint8
}

// The flag-setting specs.
var (
	Reset     = Spec{kind: specReset}
	Bold      = Spec{kind: specBold}
	Underline = Spec{kind: specUnderline}
	Italic    = Spec{kind: specItalic}
	Intense   = Spec{kind: specIntense}
)

// Fg returns a spec that sets the foreground color.
func Fg(c Color) Spec {
	return Spec{kind: specFg, color: c}
}

// Bg returns a spec that sets the background color.
func Bg(c Color) Spec {
	return Spec{kind: specBg, color: c}
}

// Number returns a raw SGR code spec. Raw codes have no place in the style
// model, so folding ignores them.
func Number(code uint8) Spec {
	return Spec{kind: specNumber, code: code}
}

// Apply returns a copy of s with the spec applied. Reset returns the
// default style regardless of s.
func (s Style) Apply(spec Spec) Style {
	switch spec.kind {
	case specReset:
		return Style{}
	case specBold:
		return s.Bold(true)
	case specUnderline:
		return s.Underline(true)
	case specItalic:
		return s.Italic(true)
	case specIntense:
		return s.Intense(true)
	case specFg:
		return s.Foreground(spec.color)
	case specBg:
		return s.Background(spec.color)
	}
	return s
}

// FromSpecs folds a sequence of specs into a style, applying each in order.
func FromSpecs(specs ...Spec) Style {
	var s Style
	for _, spec := range specs {
		s = s.Apply(spec)
	}
	return s
}
