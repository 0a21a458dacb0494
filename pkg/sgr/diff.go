package sgr

import "io"

// DiffKind classifies the transition between two styles.
type DiffKind uint8

const (
	// DiffNone means the styles are equal and nothing needs writing.
	DiffNone DiffKind = iota
	// DiffAdd means the transition is expressible by only adding attributes.
	DiffAdd
	// DiffReset means some attribute must be removed, which SGR cannot
	// express per-attribute; the transition is a full reset plus re-apply.
	DiffReset
)

// Difference is the minimal transition from one style to another.
type Difference struct {
	Kind DiffKind
	// Add holds the delta style when Kind is DiffAdd: only the colors that
	// changed and the flags that newly turned on.
	Add Style
}

// Between computes the minimal transition from prev to next.
//
// The decision is all-or-nothing: the moment any flag or color present in
// prev is absent from next, the whole transition is a reset followed by a
// fresh render of next. No attempt is made to clear just the offending
// attribute, because SGR as used here has no per-attribute off codes.
func Between(prev, next Style) Difference {
	if prev == next {
		return Difference{Kind: DiffNone}
	}

	if prev.attrs&^next.attrs != 0 ||
		(prev.fg.IsSet() && !next.fg.IsSet()) ||
		(prev.bg.IsSet() && !next.bg.IsSet()) {
		return Difference{Kind: DiffReset}
	}

	delta := Style{attrs: next.attrs &^ prev.attrs}
	if next.fg != prev.fg {
		delta.fg = next.fg
	}
	if next.bg != prev.bg {
		delta.bg = next.bg
	}
	return Difference{Kind: DiffAdd, Add: delta}
}

// WriteDifference writes the minimal transition from prev to s: nothing when
// the styles are equal, the delta fragments when adding suffices, or the
// reset escape followed by s's attribute fragments. A default s therefore
// yields a single reset escape, not two.
func (s Style) WriteDifference(w io.Writer, prev Style) (int64, error) {
	switch d := Between(prev, s); d.Kind {
	case DiffAdd:
		return d.Add.WriteTo(w)
	case DiffReset:
		n, err := io.WriteString(w, ResetSeq)
		if err != nil {
			return int64(n), err
		}
		m, err := s.writeAttributes(w)
		return int64(n) + m, err
	}
	return 0, nil
}
