package mimetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		expected MIME
		want     bool
	}{
		{"Plain text with charset", "text/plain; charset=utf-8", TextPlain, true},
		{"CSV", "text/csv", TextCSV, true},
		{"JSON", "application/json", ApplicationJSON, true},
		{"JSON with charset", "application/json; charset=utf-8", ApplicationJSON, true},
		{"Mismatch", "text/plain; charset=utf-8", ApplicationJSON, false},
		{"Unknown type", "application/octet-stream", TextPlain, false},
		{"Invalid MIME", "not a mime", TextPlain, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Matches(tt.detected, tt.expected)
			require.Equal(t, tt.want, ok)
		})
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		path string
		want MIME
	}{
		{"JSON array", `[{"text": "merci", "label": 0}]`, "corpus.json", ApplicationJSON},
		{"CSV with header", "text,label\nmerci,0\nnul,1\n", "corpus.csv", TextCSV},
		{"Single CSV row relies on extension", "merci,0\n", "corpus.csv", TextCSV},
		{"Plain text", "merci\nnul\n", "comments.txt", TextPlain},
		{"Binary", "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR", "image.png", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Detect([]byte(tt.raw), tt.path))
		})
	}
}
