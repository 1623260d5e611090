package comment_stripper

import (
	"fmt"
	"regexp"
	"sort"
)

// PreservePattern is a compiled rule that protects matching text from removal
type PreservePattern struct {
	Regex       *regexp.Regexp
	Description string
}

// Matcher holds the active preserve patterns for one invocation
type Matcher struct {
	patterns []PreservePattern
}

// defaultPatterns are always active unless the user explicitly overrides them
var defaultPatterns = []PreservePattern{
	{
		Regex:       regexp.MustCompile(`#(?:[0-9a-fA-F]{6}|[0-9a-fA-F]{3})\b`),
		Description: "color codes (#FF5733, #ABC)",
	},
	{
		Regex:       regexp.MustCompile(`https?://[^\s"'<>]+`),
		Description: "URLs (https://example.com)",
	},
	{
		Regex:       regexp.MustCompile(`^#![^\r\n]*`),
		Description: "shebang lines (#!/usr/bin/env python)",
	},
	{
		Regex:       regexp.MustCompile(`#(?:include|define|ifdef|ifndef|if|elif|else|endif|pragma|undef)\b[^\r\n]*`),
		Description: "C preprocessor directives (#include, #define)",
	},
}

// NewMatcher compiles the user patterns and unions them with the defaults.
// With override set the user patterns replace the defaults entirely. An
// invalid regex is a fatal configuration error, reported before any file is
// touched.
func NewMatcher(userPatterns []string, override bool) (*Matcher, error) {
	var patterns []PreservePattern
	if !override {
		patterns = append(patterns, defaultPatterns...)
	}

	for _, raw := range userPatterns {
		re, err := regexp.Compile(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid preserve pattern %q: %w", raw, err)
		}
		patterns = append(patterns, PreservePattern{Regex: re, Description: "user pattern"})
	}

	return &Matcher{patterns: patterns}, nil
}

// Patterns returns the active patterns, defaults first
func (m *Matcher) Patterns() []PreservePattern {
	return m.patterns
}

// Covers reports whether any preserve pattern match within line covers the
// byte at offset. The stripper consults this before treating a token at that
// position as a comment opener, so a "//" inside a preserved URL is never
// mistaken for a comment.
func (m *Matcher) Covers(line string, offset int) bool {
	for _, p := range m.patterns {
		for _, loc := range p.Regex.FindAllStringIndex(line, -1) {
			if offset >= loc[0] && offset < loc[1] {
				return true
			}
		}
	}
	return false
}

// Fragments extracts the substrings of a comment span that overlap preserve
// pattern matches, merged and in encounter order. The caller splices them
// back in place of the removed comment.
func (m *Matcher) Fragments(span string) []string {
	var ranges [][2]int
	for _, p := range m.patterns {
		for _, loc := range p.Regex.FindAllStringIndex(span, -1) {
			if loc[1] > loc[0] {
				ranges = append(ranges, [2]int{loc[0], loc[1]})
			}
		}
	}
	if len(ranges) == 0 {
		return nil
	}

	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i][0] != ranges[j][0] {
			return ranges[i][0] < ranges[j][0]
		}
		return ranges[i][1] > ranges[j][1]
	})

	// Merge overlapping ranges so a span matched by two patterns is kept once
	merged := [][2]int{ranges[0]}
	for _, r := range ranges[1:] {
		last := &merged[len(merged)-1]
		if r[0] <= last[1] {
			if r[1] > last[1] {
				last[1] = r[1]
			}
			continue
		}
		merged = append(merged, r)
	}

	fragments := make([]string, 0, len(merged))
	for _, r := range merged {
		fragments = append(fragments, span[r[0]:r[1]])
	}
	return fragments
}
