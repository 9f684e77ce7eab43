// Package mimetypes names the corpus formats the loader accepts and sniffs
// them from file content.
package mimetypes

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

type MIME string

const (
	Unknown         MIME = "unknown"
	TextPlain       MIME = "text/plain"
	TextCSV         MIME = "text/csv"
	ApplicationJSON MIME = "application/json"
)

// Matches reports whether detected, parameters included, names expected.
func Matches(detected string, expected MIME) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(detected)
	if err != nil {
		return Unknown, false
	}
	return expected, mt == string(expected)
}

// Detect sniffs raw and falls back on the file extension for CSV, since a
// single row is not enough for content sniffing to recognize it.
func Detect(raw []byte, path string) MIME {
	detected := mimetype.Detect(raw)
	switch {
	case detected.Is(string(ApplicationJSON)):
		return ApplicationJSON
	case detected.Is(string(TextCSV)):
		return TextCSV
	case detected.Is(string(TextPlain)) && strings.EqualFold(filepath.Ext(path), ".csv"):
		return TextCSV
	}
	if mt, ok := Matches(detected.String(), TextPlain); ok {
		return mt
	}
	return Unknown
}
