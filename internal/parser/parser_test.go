package parser

import "testing"

var actions = []string{"describe", "go", "wait", "quit"}
var directions = []string{"north", "south", "east", "west"}

func TestNormalisationTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  DESCRIBE  ", want: "describe"},
		{in: "look-around!!", want: "look around"},
		{in: "go   N", want: "go n"},
		{in: "x ! \t- y", want: "x y"},
		{in: "_north_", want: "north"},
	}
	for _, tc := range tests {
		got := normaliseInput(tc.in)
		if got != tc.want {
			t.Fatalf("normaliseInput(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestPickByIndex(t *testing.T) {
	p := New()
	tests := []struct {
		in    string
		kind  PickKind
		index int
	}{
		{in: "0", kind: Picked, index: 0},
		{in: " 3 ", kind: Picked, index: 3},
		{in: "4", kind: OutOfRange, index: -1},
		{in: "-1", kind: OutOfRange, index: -1},
		{in: "", kind: Empty, index: -1},
		{in: "   ", kind: Empty, index: -1},
	}
	for _, tc := range tests {
		got := p.Pick(tc.in, actions)
		if got.Kind != tc.kind || got.Index != tc.index {
			t.Fatalf("Pick(%q)=%+v want kind=%d index=%d", tc.in, got, tc.kind, tc.index)
		}
	}
}

func TestPickByLabelAndAlias(t *testing.T) {
	p := New()
	tests := []struct {
		in      string
		choices []string
		want    int
	}{
		{in: "wait", choices: actions, want: 2},
		{in: "Quit", choices: actions, want: 3},
		{in: "q", choices: actions, want: 3},
		{in: "look", choices: actions, want: 0},
		{in: "desc", choices: actions, want: 0},
		{in: "w", choices: directions, want: 3},
		{in: "so", choices: directions, want: 1},
	}
	for _, tc := range tests {
		got := p.Pick(tc.in, tc.choices)
		if got.Kind != Picked || got.Index != tc.want {
			t.Fatalf("Pick(%q)=%+v want index %d", tc.in, got, tc.want)
		}
	}
}

func TestTypoNrthMapsToNorth(t *testing.T) {
	p := New()
	got := p.Pick("nrth", directions)
	if got.Kind != Picked || got.Index != 0 {
		t.Fatalf("expected north, got %+v", got)
	}
	if got.Confidence < 0.6 {
		t.Fatalf("expected decent confidence for typo correction, got %.2f", got.Confidence)
	}
}

func TestAliasOnlyAppliesToOfferedChoices(t *testing.T) {
	p := New()
	// "w" is west among directions but wait is not aliased to it
	got := p.Pick("w", actions)
	if got.Kind == Picked {
		t.Fatalf("did not expect a pick for w among actions, got %+v", got)
	}
}

func TestUnknownInputIsNoMatch(t *testing.T) {
	p := New()
	got := p.Pick("dance", actions)
	if got.Kind != NoMatch || got.Index != -1 {
		t.Fatalf("expected no match, got %+v", got)
	}
}

func TestAmbiguousTypoReturnsOptions(t *testing.T) {
	p := New()
	got := p.Pick("bat", []string{"cat", "hat"})
	if got.Kind != Ambiguous {
		t.Fatalf("expected ambiguity, got %+v", got)
	}
	if len(got.Options) != 2 || got.Options[0] != 0 || got.Options[1] != 1 {
		t.Fatalf("expected options [0 1], got %v", got.Options)
	}
}

func TestRegisterChoiceAddsAlias(t *testing.T) {
	p := New()
	p.RegisterChoice(ChoiceDef{Label: "describe", Aliases: []string{"survey"}})
	got := p.Pick("survey", actions)
	if got.Kind != Picked || got.Index != 0 {
		t.Fatalf("expected describe, got %+v", got)
	}
}

func TestPickKeepsRawInput(t *testing.T) {
	pick := New().Pick("  Nrth ", directions)
	if pick.Raw != "  Nrth " {
		t.Fatalf("expected raw input kept, got %q", pick.Raw)
	}
	if pick.Normalised != "nrth" {
		t.Fatalf("expected normalised nrth, got %q", pick.Normalised)
	}
	if pick.Kind != Picked || pick.Index != 0 {
		t.Fatalf("expected north, got kind=%d index=%d", pick.Kind, pick.Index)
	}
}
