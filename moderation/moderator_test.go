package moderation

import (
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// TestModerator_Censor
// The blocklist uses whole words only, so "con" must never fire inside "contenu".
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	blocklist := []string{"connard", "imbécile", "con", "va te faire"}
	mod, err := NewModerator(blocklist, replacementChar, log)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "cest un connard il est mechant",
			expected: "cest un ******* il est mechant",
			words:    []string{"connard"},
		},
		{
			name:     "Multiple occurrences",
			input:    "connard connard",
			expected: "******* *******",
			words:    []string{"connard", "connard"},
		},
		{
			name:     "Leet speak and internal punctuation",
			input:    "Quel C.0.n.n.4.r.d !",
			expected: "Quel ************* !",
			words:    []string{"connard"},
		},
		{
			name:     "Uppercase accented word next to punctuation",
			input:    "Arrête, IMBÉCILE.",
			expected: "Arrête, ********.",
			words:    []string{"imbécile"},
		},
		{
			name:     "Multi word entry keeps the spacing",
			input:    "Va  te faire voir",
			expected: "**  ** ***** voir",
			words:    []string{"va te faire"},
		},
		{
			name:     "Short entry inside a longer word",
			input:    "Excellent contenu, continuez",
			expected: "Excellent contenu, continuez",
			words:    nil,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			content, words := mod.Censor(tt.input)
			req.Equal(tt.expected, content, "test=%s,", tt.name)
			req.Equal(tt.words, words, "expected=%s,words=%s", tt.expected, words)
		})
	}
}

func TestModerator_CornerCases(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	// Given real noise in the blocklist
	blocklist := []string{"...", ",,,", "", "   ", "connard", "CONNARD"}

	mod, err := NewModerator(blocklist, replacementChar, log)
	req.NoError(err)

	// Then the comment is censored with the first spelling of the entry
	content, words := mod.Censor("un connard")
	req.Equal("un *******", content)
	req.Equal([]string{"connard"}, words)

	// Then real noise is left untouched
	content, words = mod.Censor("Hello ...")
	req.Equal("Hello ...", content)
	req.Nil(words)
}

func TestModerator_EmptyBlocklist(t *testing.T) {
	req := require.New(t)
	mod, err := NewModerator(nil, replacementChar, slog.Default())
	req.NoError(err)

	content, words := mod.Censor("connard")
	req.Equal("connard", content)
	req.Nil(words)
	req.Nil(mod.Blocked("anything"))
}
