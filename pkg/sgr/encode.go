package sgr

import "io"

const esc = "\x1b["

// ResetSeq is the universal SGR reset escape.
const ResetSeq = esc + "0m"

// Fixed emission order for the flag fragments. Intense is absent: it has no
// SGR code of its own and only modifies color encoding.
var attrCodes = [...]struct {
	attr attrMask
	code string
}{
	{attrBold, "1"},
	{attrDim, "2"},
	{attrItalic, "3"},
	{attrUnderline, "4"},
	{attrBlink, "5"},
	{attrReverse, "7"},
	{attrHidden, "8"},
	{attrStrikethrough, "9"},
}

// WriteTo renders s as ANSI SGR escape fragments, one escape per attribute.
// The default style renders as exactly the reset escape. Write errors
// propagate immediately; whatever fragments were already written stand.
// WriteTo implements io.WriterTo.
func (s Style) WriteTo(w io.Writer) (int64, error) {
	if s.IsDefault() {
		n, err := io.WriteString(w, ResetSeq)
		return int64(n), err
	}
	return s.writeAttributes(w)
}

// writeAttributes emits the flag and color fragments in their fixed order,
// skipping the default-style reset special case. The difference engine leans
// on that: re-applying a default target after a reset must add nothing.
func (s Style) writeAttributes(w io.Writer) (int64, error) {
	var written int64
	for _, ac := range attrCodes {
		if s.attrs&ac.attr == 0 {
			continue
		}
		n, err := io.WriteString(w, esc+ac.code+"m")
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	intense := s.attrs&attrIntense != 0
	if s.fg.IsSet() {
		n, err := io.WriteString(w, s.fg.sequence(false, intense))
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	if s.bg.IsSet() {
		n, err := io.WriteString(w, s.bg.sequence(true, intense))
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
