package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Registry struct {
	aliases map[string][]string
}

func NewRegistry() *Registry {
	return &Registry{aliases: make(map[string][]string)}
}

func (r *Registry) RegisterChoice(c ChoiceDef) {
	label := normaliseInput(c.Label)
	if label == "" {
		return
	}
	for _, a := range c.Aliases {
		if n := normaliseInput(a); n != "" {
			r.aliases[label] = append(r.aliases[label], n)
		}
	}
}

type choicePhrase struct {
	index int
	label string
	alias string
}

type choiceCandidate struct {
	Index  int
	Alias  string
	Score  float64
	Source string
}

func (r *Registry) phrases(choices []string) []choicePhrase {
	out := make([]choicePhrase, 0, len(choices)*2)
	for i, c := range choices {
		label := normaliseInput(c)
		if label == "" {
			continue
		}
		out = append(out, choicePhrase{index: i, label: label, alias: label})
		for _, a := range r.aliases[label] {
			out = append(out, choicePhrase{index: i, label: label, alias: a})
		}
	}
	return out
}

// matchChoice scores every label and alias against the input and returns the
// best candidate plus the best candidate for each other choice.
func (r *Registry) matchChoice(in string, choices []string) (choiceCandidate, []choiceCandidate) {
	if in == "" {
		return choiceCandidate{Index: -1}, nil
	}
	cands := make([]choiceCandidate, 0, len(choices))
	for _, phrase := range r.phrases(choices) {
		if in == phrase.alias {
			score := 1.0
			source := "exact"
			if phrase.alias != phrase.label {
				score = 0.97
				source = "alias"
			}
			cands = append(cands, choiceCandidate{Index: phrase.index, Alias: phrase.alias, Score: score, Source: source})
			continue
		}

		if len(in) >= 2 && strings.HasPrefix(phrase.alias, in) {
			cands = append(cands, choiceCandidate{Index: phrase.index, Alias: phrase.alias, Score: 0.9, Source: "prefix"})
			continue
		}

		// Fuzzy: only when there was no exact/prefix hit for this phrase.
		if len(in) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(in, phrase.alias)
		if dist > levenshteinLimit(len(phrase.alias)) {
			continue
		}
		score := 0.72 - (0.08 * float64(dist))
		if phrase.alias != phrase.label {
			score += 0.03
		}
		cands = append(cands, choiceCandidate{Index: phrase.index, Alias: phrase.alias, Score: score, Source: "lev"})
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			return cands[i].Index < cands[j].Index
		}
		return cands[i].Score > cands[j].Score
	})

	if len(cands) == 0 {
		return choiceCandidate{Index: -1}, nil
	}
	best := cands[0]
	alts := make([]choiceCandidate, 0, 4)
	seen := map[int]bool{best.Index: true}
	for _, c := range cands[1:] {
		if seen[c.Index] {
			continue
		}
		seen[c.Index] = true
		alts = append(alts, c)
	}
	return best, alts
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	choices := []ChoiceDef{
		{Label: "describe", Aliases: []string{"d", "l", "look", "look around", "where am i"}},
		{Label: "go", Aliases: []string{"g", "walk", "move", "head", "travel"}},
		{Label: "wait", Aliases: []string{"z", "rest", "pass time"}},
		{Label: "quit", Aliases: []string{"q", "exit", "bye"}},
		{Label: "north", Aliases: []string{"n"}},
		{Label: "south", Aliases: []string{"s"}},
		{Label: "east", Aliases: []string{"e"}},
		{Label: "west", Aliases: []string{"w"}},
	}
	for _, c := range choices {
		r.RegisterChoice(c)
	}
	return r
}
