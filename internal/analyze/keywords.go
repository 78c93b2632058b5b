// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze implements the gap-detection core: keyword extraction,
// coverage checking, severity classification, and gap aggregation over the
// reference framework catalog.
package analyze

import (
	"regexp"
	"strings"
)

// DefaultStopWords lists the filler words removed during keyword extraction.
var DefaultStopWords = []string{
	"the", "and", "for", "are", "with", "from", "their", "this", "that",
}

// wordPattern matches word tokens in lowercased text.
var wordPattern = regexp.MustCompile(`[a-z0-9]+(?:'[a-z]+)?`)

// stopWordSet builds a lookup set from a stop-word list.
func stopWordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

// keywords extracts the significant terms of a requirement: lowercase word
// tokens with stop words removed, tokens shorter than minLen discarded, and
// duplicates dropped while keeping first-occurrence order. A requirement
// consisting only of stop words yields an empty set; the coverage checker
// treats that as never covered rather than failing.
func keywords(text string, minLen int, stop map[string]bool) []string {
	tokens := wordPattern.FindAllString(strings.ToLower(text), -1)

	var out []string
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		if len(tok) < minLen || stop[tok] || seen[tok] {
			continue
		}
		seen[tok] = true
		out = append(out, tok)
	}
	return out
}
