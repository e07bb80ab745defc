// Package moderation cleans chat text before it is stored and broadcast.
package moderation

import (
	"log/slog"
	"unicode"

	"sharemyshows-live/contract"

	goahocorasick "github.com/anknown/ahocorasick"
)

var _ contract.IModerator = (*Moderator)(nil)

type Moderator struct {
	log          *slog.Logger
	matcher      *goahocorasick.Machine
	censoredChar rune
}

type TextMapping struct {
	Normalized []rune
	OrigIdx    []int
}

// NewModerator initializes the Aho-Corasick automaton with a normalized version of the provided censored words list.
// Words made only of noise are skipped: they would match every punctuation run.
func NewModerator(censoredWords []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	patterns := make([][]rune, 0, len(censoredWords))
	for _, word := range censoredWords {
		if p := normalizeRunes([]rune(word)); len(p) > 0 {
			patterns = append(patterns, p)
		}
	}

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return nil, err
	}
	return &Moderator{log: log, matcher: m, censoredChar: censoredChar}, nil
}

// Censor replaces every character of a forbidden word, noise included, while preserving spacing around it.
func (m *Moderator) Censor(original string) string {
	censored, words := m.CensorWords(original)
	if len(words) > 0 {
		m.log.Debug("Message censored", "words", len(words))
	}
	return censored
}

// CensorWords is Censor that also reports the matched words.
func (m *Moderator) CensorWords(original string) (string, []string) {
	mapping := m.normalize(original)
	if len(mapping.Normalized) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	spans := m.matcher.MultiPatternSearch(mapping.Normalized, false)
	if len(spans) == 0 {
		return original, nil
	}

	var words []string
	for _, span := range spans {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)

		if normStart < 0 || normEnd > len(mapping.OrigIdx) {
			continue
		}

		origStart := mapping.OrigIdx[normStart]
		origEnd := mapping.OrigIdx[normEnd-1] + 1

		for i := origStart; i < origEnd; i++ {
			origRunes[i] = m.censoredChar
		}
		words = append(words, string(span.Word))
	}

	return string(origRunes), words
}

// normalize transforms the input string into a searchable format and tracks original rune positions.
func (m *Moderator) normalize(input string) TextMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		norm = append(norm, unicode.ToLower(clean))
		origIdx = append(origIdx, i)
	}
	return TextMapping{Normalized: norm, OrigIdx: origIdx}
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune maps common leet speak characters back to letters.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
