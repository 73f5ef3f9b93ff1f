// Package search implements find and replace over document content and over
// workspace directories.
package search

import (
	"fmt"
	"regexp"
	"strings"
)

// Options controls how the query string is interpreted.
type Options struct {
	CaseSensitive bool `json:"caseSensitive"`
	WholeWord     bool `json:"wholeWord"`
	UseRegex      bool `json:"useRegex"`
}

// Match is a single hit. Line and Column are 1-based, matching editor
// coordinates.
type Match struct {
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Length   int    `json:"length"`
	Text     string `json:"text"`
	LineText string `json:"lineText"`
}

// ReplaceResult is the outcome of a replace-all over one document.
type ReplaceResult struct {
	NewContent    string `json:"newContent"`
	ReplacedCount int    `json:"replacedCount"`
}

// compile turns the query into a regexp per the options. Literal queries are
// quoted; whole-word adds \b anchors; case-insensitivity is a (?i) prefix.
func compile(query string, opts Options) (*regexp.Regexp, error) {
	pattern := query
	if !opts.UseRegex {
		pattern = regexp.QuoteMeta(query)
	}
	if opts.WholeWord {
		pattern = `\b` + pattern + `\b`
	}
	if !opts.CaseSensitive {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern: %w", err)
	}
	return re, nil
}

// Search scans content line by line and returns every match of query.
// An empty query matches nothing.
func Search(query, content string, opts Options) ([]Match, error) {
	if query == "" {
		return nil, nil
	}

	re, err := compile(query, opts)
	if err != nil {
		return nil, err
	}

	var matches []Match
	for lineNum, line := range strings.Split(content, "\n") {
		for _, loc := range re.FindAllStringIndex(line, -1) {
			matches = append(matches, Match{
				Line:     lineNum + 1,
				Column:   loc[0] + 1,
				Length:   loc[1] - loc[0],
				Text:     line[loc[0]:loc[1]],
				LineText: line,
			})
		}
	}
	return matches, nil
}

// Replace substitutes every match of query in content with replacement and
// reports how many substitutions were made. An empty query leaves the
// content untouched.
func Replace(query, replacement, content string, opts Options) (ReplaceResult, error) {
	if query == "" {
		return ReplaceResult{NewContent: content}, nil
	}

	re, err := compile(query, opts)
	if err != nil {
		return ReplaceResult{}, err
	}

	count := len(re.FindAllStringIndex(content, -1))
	if count == 0 {
		return ReplaceResult{NewContent: content}, nil
	}

	replaced := re.ReplaceAllString(content, replacement)
	return ReplaceResult{NewContent: replaced, ReplacedCount: count}, nil
}
