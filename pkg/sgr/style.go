package sgr

// attrMask is a bitmask over the independent boolean attributes.
type attrMask uint16

const (
	attrBold attrMask = 1 << iota
	attrDim
	attrItalic
	attrUnderline
	attrBlink
	attrReverse
	attrHidden
	attrStrikethrough
	attrIntense
)

// Style is the set of attributes applied to a span of text: optional
// foreground and background colors plus independently toggleable flags.
// The zero value is the default style (everything off, both colors
// inheriting the terminal default). Styles are comparable values and all
// setters return a new Style rather than mutating the receiver.
type Style struct {
	fg, bg Color
	attrs  attrMask
}

// NewStyle returns the default style.
func NewStyle() Style {
	return Style{}
}

// FromFg returns a style with only the foreground set.
func FromFg(c Color) Style {
	return Style{fg: c}
}

// FromBg returns a style with only the background set.
func FromBg(c Color) Style {
	return Style{bg: c}
}

// Foreground returns a copy of s with the foreground color set.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background returns a copy of s with the background color set.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

func (s Style) with(a attrMask, v bool) Style {
	if v {
		s.attrs |= a
	} else {
		s.attrs &^= a
	}
	return s
}

// Bold returns a copy of s with the bold flag set to v.
func (s Style) Bold(v bool) Style { return s.with(attrBold, v) }

// Dim returns a copy of s with the dim flag set to v.
func (s Style) Dim(v bool) Style { return s.with(attrDim, v) }

// Italic returns a copy of s with the italic flag set to v.
func (s Style) Italic(v bool) Style { return s.with(attrItalic, v) }

// Underline returns a copy of s with the underline flag set to v.
func (s Style) Underline(v bool) Style { return s.with(attrUnderline, v) }

// Blink returns a copy of s with the blink flag set to v.
func (s Style) Blink(v bool) Style { return s.with(attrBlink, v) }

// Reverse returns a copy of s with the reverse-video flag set to v.
func (s Style) Reverse(v bool) Style { return s.with(attrReverse, v) }

// Hidden returns a copy of s with the hidden flag set to v.
func (s Style) Hidden(v bool) Style { return s.with(attrHidden, v) }

// Strikethrough returns a copy of s with the strikethrough flag set to v.
func (s Style) Strikethrough(v bool) Style { return s.with(attrStrikethrough, v) }

// Intense returns a copy of s with the intense flag set to v. Intense is a
// rendering modifier, not a color: it makes named colors encode through the
// bright 256-color range.
func (s Style) Intense(v bool) Style { return s.with(attrIntense, v) }

// GetForeground returns the foreground color (zero Color when unset).
func (s Style) GetForeground() Color { return s.fg }

// GetBackground returns the background color (zero Color when unset).
func (s Style) GetBackground() Color { return s.bg }

func (s Style) GetBold() bool          { return s.attrs&attrBold != 0 }
func (s Style) GetDim() bool           { return s.attrs&attrDim != 0 }
func (s Style) GetItalic() bool        { return s.attrs&attrItalic != 0 }
func (s Style) GetUnderline() bool     { return s.attrs&attrUnderline != 0 }
func (s Style) GetBlink() bool         { return s.attrs&attrBlink != 0 }
func (s Style) GetReverse() bool       { return s.attrs&attrReverse != 0 }
func (s Style) GetHidden() bool        { return s.attrs&attrHidden != 0 }
func (s Style) GetStrikethrough() bool { return s.attrs&attrStrikethrough != 0 }
func (s Style) GetIntense() bool       { return s.attrs&attrIntense != 0 }

// IsDefault reports whether s is the default style.
func (s Style) IsDefault() bool {
	return s == Style{}
}

// Merge combines s "then" next: next's colors win where set, flags
// accumulate with OR. Merging with the default style does not behave as an
// identity: it yields the default style entirely. That asymmetry models a
// Reset spec folded through an accumulator and is part of the contract.
func (s Style) Merge(next Style) Style {
	if next.IsDefault() {
		return Style{}
	}
	if next.fg.IsSet() {
		s.fg = next.fg
	}
	if next.bg.IsSet() {
		s.bg = next.bg
	}
	s.attrs |= next.attrs
	return s
}
