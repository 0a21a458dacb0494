package sgr

import (
	"bytes"
	"testing"
)

func renderDifference(t *testing.T, prev, next Style) string {
	t.Helper()
	var buf bytes.Buffer
	n, err := next.WriteDifference(&buf, prev)
	if err != nil {
		t.Fatalf("WriteDifference failed: %v", err)
	}
	if n != int64(buf.Len()) {
		t.Fatalf("WriteDifference reported %d bytes, wrote %d", n, buf.Len())
	}
	return buf.String()
}

func TestBetweenEqualStyles(t *testing.T) {
	styles := []Style{
		NewStyle(),
		FromFg(Red),
		FromBg(Ansi256(200)).Blink(true),
		NewStyle().Bold(true).Dim(true).Intense(true).Foreground(RGB(9, 9, 9)),
	}
	for _, s := range styles {
		if d := Between(s, s); d.Kind != DiffNone {
			t.Errorf("Between(%+v, same) = %v, want DiffNone", s, d.Kind)
		}
		if out := renderDifference(t, s, s); out != "" {
			t.Errorf("equal transition wrote %q", out)
		}
	}
}

func TestBetweenAddsOnlyWhatChanged(t *testing.T) {
	tests := []struct {
		name       string
		prev, next Style
		wantDelta  Style
	}{
		{
			"new flag only",
			FromFg(Red),
			FromFg(Red).Bold(true),
			NewStyle().Bold(true),
		},
		{
			"changed fg only",
			FromFg(Red).Bold(true),
			FromFg(Green).Bold(true),
			FromFg(Green),
		},
		{
			"new bg, unchanged fg omitted",
			FromFg(Red),
			FromFg(Red).Background(Blue),
			FromBg(Blue),
		},
		{
			"everything from default",
			NewStyle(),
			FromFg(Red).Underline(true),
			FromFg(Red).Underline(true),
		},
		{
			"named fg to palette fg",
			FromFg(Red),
			FromFg(Ansi256(9)),
			FromFg(Ansi256(9)),
		},
	}
	for _, tt := range tests {
		d := Between(tt.prev, tt.next)
		if d.Kind != DiffAdd {
			t.Errorf("%s: kind %v, want DiffAdd", tt.name, d.Kind)
			continue
		}
		if d.Add != tt.wantDelta {
			t.Errorf("%s: delta %+v, want %+v", tt.name, d.Add, tt.wantDelta)
		}
	}
}

func TestBetweenRequiresReset(t *testing.T) {
	tests := []struct {
		name       string
		prev, next Style
	}{
		{"fg removed", FromFg(Blue), NewStyle()},
		{"bg removed", FromBg(Blue).Bold(true), NewStyle().Bold(true)},
		{"bold removed", FromFg(Red).Bold(true), FromFg(Red)},
		{"dim removed", NewStyle().Dim(true), NewStyle()},
		{"italic removed", NewStyle().Italic(true).Bold(true), NewStyle().Bold(true)},
		{"underline removed", NewStyle().Underline(true), NewStyle().Bold(true)},
		{"blink removed", NewStyle().Blink(true), NewStyle()},
		{"reverse removed", NewStyle().Reverse(true), NewStyle()},
		{"hidden removed", NewStyle().Hidden(true), NewStyle()},
		{"strikethrough removed", NewStyle().Strikethrough(true), NewStyle()},
		{"intense removed", FromFg(Red).Intense(true), FromFg(Red)},
	}
	for _, tt := range tests {
		if d := Between(tt.prev, tt.next); d.Kind != DiffReset {
			t.Errorf("%s: kind %v, want DiffReset", tt.name, d.Kind)
		}
	}
}

// Superset transitions never reset: a next that keeps every attribute of
// prev, over a sampled flag/color truth table.
func TestBetweenMonotonicity(t *testing.T) {
	fgs := []Color{{}, Red, Ansi256(100)}
	bgs := []Color{{}, Blue}
	for prevAttrs := attrMask(0); prevAttrs < 1<<4; prevAttrs++ {
		for extra := attrMask(0); extra < 1<<4; extra++ {
			for _, fg := range fgs {
				for _, bg := range bgs {
					prev := Style{fg: fg, bg: bg, attrs: prevAttrs}
					next := Style{fg: fg, bg: bg, attrs: prevAttrs | extra}
					if d := Between(prev, next); d.Kind == DiffReset {
						t.Fatalf("superset transition reset: prev %+v next %+v", prev, next)
					}
				}
			}
		}
	}
}

// Exhaustive classification over all pairs of flag subsets (four flags) with
// representative color combinations.
func TestBetweenTruthTable(t *testing.T) {
	colors := []Color{{}, Red, Blue}
	for prevAttrs := attrMask(0); prevAttrs < 1<<4; prevAttrs++ {
		for nextAttrs := attrMask(0); nextAttrs < 1<<4; nextAttrs++ {
			for _, prevFg := range colors {
				for _, nextFg := range colors {
					prev := Style{fg: prevFg, attrs: prevAttrs}
					next := Style{fg: nextFg, attrs: nextAttrs}
					d := Between(prev, next)

					switch {
					case prev == next:
						if d.Kind != DiffNone {
							t.Fatalf("%+v -> %+v: kind %v, want DiffNone", prev, next, d.Kind)
						}
					case prevAttrs&^nextAttrs != 0 || (prevFg.IsSet() && !nextFg.IsSet()):
						if d.Kind != DiffReset {
							t.Fatalf("%+v -> %+v: kind %v, want DiffReset", prev, next, d.Kind)
						}
					default:
						if d.Kind != DiffAdd {
							t.Fatalf("%+v -> %+v: kind %v, want DiffAdd", prev, next, d.Kind)
						}
						if d.Add.attrs != nextAttrs&^prevAttrs {
							t.Fatalf("%+v -> %+v: delta flags %b", prev, next, d.Add.attrs)
						}
						if prevFg == nextFg && d.Add.fg.IsSet() {
							t.Fatalf("%+v -> %+v: unchanged fg present in delta", prev, next)
						}
						if prevFg != nextFg && d.Add.fg != nextFg {
							t.Fatalf("%+v -> %+v: delta fg %v", prev, next, d.Add.fg)
						}
					}
				}
			}
		}
	}
}

func TestWriteDifferenceScenarios(t *testing.T) {
	// Incremental add: red text gaining bold emits only the bold escape.
	got := renderDifference(t, FromFg(Red), FromFg(Red).Bold(true))
	if got != "\x1b[1m" {
		t.Errorf("red -> red+bold wrote %q, want %q", got, "\x1b[1m")
	}

	// Transition to the default style collapses to a single reset escape.
	got = renderDifference(t, FromFg(Blue), NewStyle())
	if got != "\x1b[0m" {
		t.Errorf("blue -> default wrote %q, want %q", got, "\x1b[0m")
	}

	// Reset path: re-applying next from the freshly reset state is
	// byte-identical to rendering next from the default style.
	prev := FromFg(Red).Bold(true).Underline(true)
	next := FromFg(Green).Bold(true)
	got = renderDifference(t, prev, next)
	want := "\x1b[0m" + renderDifference(t, NewStyle(), next)
	if got != want {
		t.Errorf("reset transition wrote %q, want %q", got, want)
	}
}
