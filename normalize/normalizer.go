// Package normalize cleans raw comments before they are tokenized.
// Every text flowing into the vectorizer, at training and at scoring time,
// goes through the same Normalizer so both sides share one vocabulary space.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// accented lists the lowercase accented letters kept by the default normalizer.
const accented = "àáâãäçèéêëìíîïñòóôõöùúûüýÿ"

// Normalizer turns a raw text into its normalized form.
type Normalizer interface {
	Normalize(text string) string
}

// Func adapts a plain function to the Normalizer interface.
type Func func(string) string

func (f Func) Normalize(text string) string { return f(text) }

// Default lowercases the text and drops every rune outside
// [a-z0-9], the accented letters and whitespace.
type Default struct{}

// NewDefault creates the default normalizer.
func NewDefault() Normalizer {
	return Default{}
}

// Normalize composes the text (NFC) so that "e" + combining acute becomes "é"
// before filtering, otherwise the accent would be stripped as a lone mark.
func (Default) Normalize(text string) string {
	composed := norm.NFC.String(text)
	var sb strings.Builder
	sb.Grow(len(composed))
	for _, r := range composed {
		r = unicode.ToLower(r)
		if Accepted(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Accepted reports whether r survives normalization.
func Accepted(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case unicode.IsSpace(r):
		return true
	}
	return strings.ContainsRune(accented, r)
}

// Text normalizes a single text with the default rules.
func Text(text string) string {
	return Default{}.Normalize(text)
}

// All normalizes every text with n, keeping the input order.
func All(n Normalizer, texts []string) []string {
	out := make([]string, len(texts))
	for i, t := range texts {
		out[i] = n.Normalize(t)
	}
	return out
}
