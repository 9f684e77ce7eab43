package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/samber/lo"
)

// readComments picks the comments to score: command line arguments first,
// then the input file, then one comment per line on stdin.
func readComments(args []string, path string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	source := stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open comments file: %w", err)
		}
		defer f.Close()
		source = f
	}

	var lines []string
	scanner := bufio.NewScanner(source)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read comments: %w", err)
	}
	return lo.Compact(lines), nil
}
