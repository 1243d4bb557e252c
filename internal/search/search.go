package search

import (
	"strings"
)

// SearchDown looks for pattern from startLine towards the end of the text,
// returns line and position or -1, -1.
func SearchDown(text [][]rune, pattern string, startLine int) (int, int) {
	if len(pattern) == 0 { return -1, -1 }
	if startLine < 0 || startLine >= len(text) { return -1, -1 }

	for i := startLine; i < len(text); i++ {
		line := string(text[i])
		pos := strings.Index(line, pattern)
		if pos != -1 { return i, pos }
	}
	return -1, -1
}

// SearchUp looks for pattern from startLine towards the beginning.
func SearchUp(text [][]rune, pattern string, startLine int) (int, int) {
	if len(pattern) == 0 { return -1, -1 }
	if startLine >= len(text) { startLine = len(text) - 1 }
	if startLine < 0 { return -1, -1 }

	for i := startLine; i >= 0; i-- {
		line := string(text[i])
		pos := strings.LastIndex(line, pattern)
		if pos != -1 { return i, pos }
	}
	return -1, -1
}

type SearchResult struct {
	Line     int
	Position int
}

// Search finds every occurrence of pattern in the text.
func Search(text [][]rune, pattern string) []SearchResult {
	results := []SearchResult{}

	if len(pattern) == 0 || len(text) == 0 { return results }

	for i := 0; i < len(text); i++ {
		from := 0
		line := string(text[i])
		for {
			pos := strings.Index(line[from:], pattern)
			if pos == -1 { break } else {
				pos = from + pos
				results = append(results, SearchResult{i, pos})
				from = pos + 1
			}
		}
	}
	return results
}
