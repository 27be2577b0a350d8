package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestMenuChooseByIndex(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(strings.NewReader("2\n"), &out, false)

	idx, err := m.Choose([]string{"describe", "go", "wait", "quit"})
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if idx != 2 {
		t.Fatalf("expected 2, got %d", idx)
	}
	want := "\n 0) describe\n 1) go\n 2) wait\n 3) quit\n\n? \n"
	if got := out.String(); got != want {
		t.Fatalf("menu output=%q want=%q", got, want)
	}
}

func TestMenuRetriesInvalidInput(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(strings.NewReader("9\nhop\n\nnrth\n"), &out, false)

	idx, err := m.Choose([]string{"north", "south", "east", "west"})
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if idx != 0 {
		t.Fatalf("expected north, got %d", idx)
	}
	got := out.String()
	for _, want := range []string{"no such choice\n\n", "\"hop\" is not a choice\n\n", "enter a number or a name\n\n"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output %q", want, got)
		}
	}
	if n := strings.Count(got, " 0) north\n"); n != 4 {
		t.Fatalf("expected the list four times, got %d", n)
	}
}

func TestMenuAmbiguousAsksAgain(t *testing.T) {
	var out bytes.Buffer
	m := NewMenu(strings.NewReader("bat\n1\n"), &out, false)

	idx, err := m.Choose([]string{"cat", "hat"})
	if err != nil {
		t.Fatalf("choose: %v", err)
	}
	if idx != 1 {
		t.Fatalf("expected 1, got %d", idx)
	}
	if !strings.Contains(out.String(), "did you mean cat or hat?") {
		t.Fatalf("expected clarification, got %q", out.String())
	}
}

func TestMenuLastLineWithoutNewline(t *testing.T) {
	m := NewMenu(strings.NewReader("quit"), &bytes.Buffer{}, false)
	idx, err := m.Choose([]string{"describe", "go", "wait", "quit"})
	if err != nil || idx != 3 {
		t.Fatalf("expected quit, got %d, %v", idx, err)
	}
}

func TestMenuInputClosed(t *testing.T) {
	m := NewMenu(strings.NewReader(""), &bytes.Buffer{}, false)
	if _, err := m.Choose([]string{"a"}); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("expected ErrInputClosed, got %v", err)
	}
}

func TestMenuStylingDisabledIsPlain(t *testing.T) {
	s := newMenuStyles(false)
	if got := s.number("0)"); got != "0)" {
		t.Fatalf("expected plain text, got %q", got)
	}
	if IsTerminal(&bytes.Buffer{}) {
		t.Fatalf("a buffer is not a terminal")
	}
}
