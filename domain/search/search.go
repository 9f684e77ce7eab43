package search

import (
	"strconv"
	"strings"
)

const DefaultLimit = 10

// Query holds the parsed parameters of a verdict search.
type Query struct {
	RawInput string // The input as typed
	Terms    string // Full text matched against stored comments
	Label    string // "toxic" or "clean", empty for both
	Lang     string // ISO 639-1 code, empty for any
	Limit    int
}

// NewSearchQuery parses a raw string with command-line style filters.
// Example: connard --label toxic --lang fr --limit 5
func NewSearchQuery(input string) Query {
	query := Query{
		RawInput: input,
		Limit:    DefaultLimit,
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			val := parts[i+1]
			switch strings.TrimPrefix(part, "--") {
			case "label":
				query.Label = strings.ToLower(val)
			case "lang":
				query.Lang = strings.ToLower(val)
			case "limit":
				if n, err := strconv.Atoi(val); err == nil && n > 0 {
					query.Limit = n
				}
			}
			i++ // Skip the value part in next iteration
			continue
		}
		textTerms = append(textTerms, part)
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}

// Empty reports a query without any criterion.
func (q Query) Empty() bool {
	return q.Terms == "" && q.Label == "" && q.Lang == ""
}
