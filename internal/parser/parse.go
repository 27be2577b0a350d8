package parser

import (
	"strconv"
	"strings"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterChoice(c ChoiceDef) {
	p.registry.RegisterChoice(c)
}

// Pick reads one line of input as either a zero-based index or the name of a
// choice. Names may be abbreviated, aliased or slightly misspelt.
func (p *Parser) Pick(raw string, choices []string) Pick {
	pick := Pick{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       NoMatch,
		Index:      -1,
	}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		pick.Kind = Empty
		return pick
	}

	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 0 || n >= len(choices) {
			pick.Kind = OutOfRange
			return pick
		}
		pick.Kind = Picked
		pick.Index = n
		pick.Confidence = 1
		return pick
	}

	best, alternates := p.registry.matchChoice(pick.Normalised, choices)
	if best.Index < 0 || best.Score < 0.5 {
		return pick
	}

	if len(alternates) > 0 && (best.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.6 {
		pick.Kind = Ambiguous
		pick.Options = []int{best.Index, alternates[0].Index}
		pick.Confidence = clampScore(best.Score)
		return pick
	}

	pick.Kind = Picked
	pick.Index = best.Index
	pick.Confidence = clampScore(best.Score)
	return pick
}
