package sgr

import "testing"

func TestSettersDoNotMutate(t *testing.T) {
	base := FromFg(Red)
	_ = base.Bold(true).Background(Blue)
	if base != FromFg(Red) {
		t.Errorf("setter mutated receiver: %+v", base)
	}
}

func TestMergeOverridesAndAccumulates(t *testing.T) {
	a := FromFg(Red).Bold(true)
	b := FromBg(Blue).Underline(true)

	got := a.Merge(b)
	want := NewStyle().Foreground(Red).Background(Blue).Bold(true).Underline(true)
	if got != want {
		t.Errorf("merge got %+v, want %+v", got, want)
	}

	// Later foreground wins; earlier flags survive.
	got = a.Merge(FromFg(Green))
	want = FromFg(Green).Bold(true)
	if got != want {
		t.Errorf("merge override got %+v, want %+v", got, want)
	}

	// Flags never turn off through a merge.
	got = a.Merge(FromFg(Red).Bold(false))
	if !got.GetBold() {
		t.Error("merge turned bold off")
	}
}

func TestMergeResetLaw(t *testing.T) {
	// Deliberately asymmetric contract: merging with the default style is
	// not an identity, it is a full reset. The other direction is a plain
	// left identity. Both directions differ and both are pinned here.
	s := FromFg(Red).Bold(true).Intense(true)

	if got := s.Merge(NewStyle()); !got.IsDefault() {
		t.Errorf("S.Merge(default) = %+v, want default", got)
	}
	if got := NewStyle().Merge(s); got != s {
		t.Errorf("default.Merge(S) = %+v, want %+v", got, s)
	}
}

func TestApplySpecs(t *testing.T) {
	tests := []struct {
		name  string
		specs []Spec
		want  Style
	}{
		{"single fg", []Spec{Fg(Red)}, FromFg(Red)},
		{"flags accumulate", []Spec{Bold, Italic, Underline, Intense}, NewStyle().Bold(true).Italic(true).Underline(true).Intense(true)},
		{"fg then bg", []Spec{Fg(Red), Bg(Ansi256(17))}, FromFg(Red).Background(Ansi256(17))},
		{"later fg wins", []Spec{Fg(Red), Fg(Blue)}, FromFg(Blue)},
		{"reset short-circuits", []Spec{Fg(Red), Bold, Reset}, NewStyle()},
		{"reset then more", []Spec{Bold, Reset, Fg(Green)}, FromFg(Green)},
		{"raw number is a no-op", []Spec{Bold, Number(53)}, NewStyle().Bold(true)},
		{"empty fold is default", nil, NewStyle()},
	}
	for _, tt := range tests {
		if got := FromSpecs(tt.specs...); got != tt.want {
			t.Errorf("%s: got %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestColorString(t *testing.T) {
	tests := []struct {
		color Color
		want  string
	}{
		{Color{}, "default"},
		{Magenta, "magenta"},
		{Ansi256(245), "ansi256(245)"},
		{RGB(255, 136, 0), "rgb(255,136,0)"},
	}
	for _, tt := range tests {
		if got := tt.color.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
