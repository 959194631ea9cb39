package util

import (
	"fmt"
	"os"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/term"
)

// StdoutRedirected returns true if stdout is redirected to a file or pipe.
func StdoutRedirected() bool {
	if fi, err := os.Stdout.Stat(); err == nil {
		return (fi.Mode() & os.ModeCharDevice) == 0
	}
	return false
}

// StdinTerminal returns true if stdin is an interactive terminal.
func StdinTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// ExpandGlobs returns the files matching any of patterns, which may use "**"
// to match across directories. Each file is listed once, in the order it was
// first matched. A pattern matching nothing is an error.
func ExpandGlobs(patterns []string) ([]string, error) {
	files := []string{}
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %s", pattern)
		}
		for _, match := range matches {
			if !slices.Contains(files, match) {
				files = append(files, match)
			}
		}
	}
	return files, nil
}
