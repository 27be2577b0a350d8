package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/appengine-ltd/wander/internal/parser"
)

// ErrInputClosed is returned by Menu.Choose when the input runs out before a
// choice is made.
var ErrInputClosed = errors.New("input closed")

// Menu is the line-based chooser: it lists the choices, reads a line and
// retries until the line names one of them.
type Menu struct {
	in     *bufio.Reader
	out    io.Writer
	parser *parser.Parser
	styles menuStyles
}

func NewMenu(in io.Reader, out io.Writer, styled bool) *Menu {
	return &Menu{
		in:     bufio.NewReader(in),
		out:    out,
		parser: parser.New(),
		styles: newMenuStyles(styled),
	}
}

func (m *Menu) Choose(choices []string) (int, error) {
	if len(choices) == 0 {
		return -1, errors.New("menu has no choices")
	}
	if err := m.writeln(""); err != nil {
		return -1, err
	}

	for {
		for n, choice := range choices {
			if err := m.writeln(" " + m.styles.number(fmt.Sprintf("%d)", n)) + " " + choice); err != nil {
				return -1, err
			}
		}
		if err := m.writeln(""); err != nil {
			return -1, err
		}

		line, err := m.readln("? ")
		if err != nil {
			return -1, err
		}

		pick := m.parser.Pick(line, choices)
		var diag string
		switch pick.Kind {
		case parser.Picked:
			if err := m.writeln(""); err != nil {
				return -1, err
			}
			return pick.Index, nil
		case parser.OutOfRange:
			diag = "no such choice"
		case parser.Ambiguous:
			diag = fmt.Sprintf("did you mean %s or %s?", choices[pick.Options[0]], choices[pick.Options[1]])
		case parser.Empty:
			diag = "enter a number or a name"
		default:
			diag = fmt.Sprintf("%q is not a choice", pick.Raw)
		}
		if err := m.writeln(m.styles.diag(diag) + "\n"); err != nil {
			return -1, err
		}
	}
}

func (m *Menu) readln(prompt string) (string, error) {
	if _, err := io.WriteString(m.out, m.styles.prompt(prompt)); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) writeln(s string) error {
	if _, err := io.WriteString(m.out, s+"\n"); err != nil {
		return fmt.Errorf("write menu: %w", err)
	}
	return nil
}
