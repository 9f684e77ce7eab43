package moderation

import (
	"log/slog"
	"slices"
	"unicode"

	"toxic-lab/normalize"

	goahocorasick "github.com/anknown/ahocorasick"
	"github.com/samber/lo"
)

// Moderator flags blocklisted words in raw comments, independently of the model.
type Moderator struct {
	matcher      *goahocorasick.Machine
	words        map[string]string
	censoredChar rune
	log          *slog.Logger
}

// TextMapping is the searchable view of a comment: folded runes, a space between
// words, and for every folded rune the index of the rune it came from.
type TextMapping struct {
	Folded  []rune
	OrigIdx []int
}

// NewModerator builds the Aho-Corasick automaton over the folded form of the blocklist.
// Entries that fold to nothing (pure punctuation, blanks) are ignored.
func NewModerator(blocklist []string, censoredChar rune, log *slog.Logger) (Moderator, error) {
	words := make(map[string]string, len(blocklist))
	for _, word := range blocklist {
		folded := string(foldRunes([]rune(word)))
		if folded == "" {
			continue
		}
		if _, ok := words[folded]; !ok {
			words[folded] = word
		}
	}

	mod := Moderator{words: words, censoredChar: censoredChar, log: log}
	if len(words) == 0 {
		log.Debug("Empty blocklist, moderation disabled")
		return mod, nil
	}

	keys := lo.Keys(words)
	slices.Sort(keys)
	patterns := lo.Map(keys, func(k string, _ int) []rune { return []rune(k) })

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Moderator{}, err
	}
	mod.matcher = m
	log.Debug("Blocklist automaton built", "patterns", len(patterns))
	return mod, nil
}

// Censor masks every blocklisted word with the censored rune, keeping the
// original spacing and punctuation around it, and returns the words found.
// A match must cover whole words: "con" never fires inside "contenu".
func (m Moderator) Censor(original string) (string, []string) {
	if m.matcher == nil {
		return original, nil
	}
	mapping := fold(original)
	if len(mapping.Folded) == 0 {
		return original, nil
	}

	terms := m.matcher.MultiPatternSearch(mapping.Folded, false)
	if len(terms) == 0 {
		return original, nil
	}

	origRunes := []rune(original)
	var found []string
	for _, term := range terms {
		start := term.Pos
		end := start + len(term.Word)
		if start < 0 || end > len(mapping.OrigIdx) || !wholeWord(mapping.Folded, start, end) {
			continue
		}

		origStart := mapping.OrigIdx[start]
		origEnd := mapping.OrigIdx[end-1] + 1
		for i := origStart; i < origEnd; i++ {
			if !unicode.IsSpace(origRunes[i]) {
				origRunes[i] = m.censoredChar
			}
		}
		found = append(found, m.words[string(term.Word)])
	}
	if len(found) == 0 {
		return original, nil
	}
	return string(origRunes), found
}

// Blocked reports the blocklisted words present in text.
func (m Moderator) Blocked(text string) []string {
	_, words := m.Censor(text)
	return words
}

func wholeWord(folded []rune, start, end int) bool {
	if start > 0 && folded[start-1] != ' ' {
		return false
	}
	return end == len(folded) || folded[end] == ' '
}

// fold builds the searchable view of input. Runs of whitespace collapse to a
// single space, leet characters are mapped back to letters, and anything the
// normalizer would drop is skipped so "B.4.d.g.€r" reads as "badger".
func fold(input string) TextMapping {
	origRunes := []rune(input)
	folded := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		if unicode.IsSpace(r) {
			if len(folded) > 0 && folded[len(folded)-1] != ' ' {
				folded = append(folded, ' ')
				origIdx = append(origIdx, i)
			}
			continue
		}
		clean := unicode.ToLower(simplifyRune(r))
		if !normalize.Accepted(clean) {
			continue
		}
		folded = append(folded, clean)
		origIdx = append(origIdx, i)
	}
	return TextMapping{Folded: folded, OrigIdx: origIdx}
}

// foldRunes folds a blocklist entry the same way comments are folded.
func foldRunes(input []rune) []rune {
	mapping := fold(string(input))
	out := mapping.Folded
	for len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
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
	case '1':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}
