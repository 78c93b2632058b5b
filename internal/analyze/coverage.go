// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import "strings"

// Document is a policy text normalized for coverage checks: lowercased,
// whitespace-collapsed, with a word set built once so repeated keyword
// probes stay cheap.
type Document struct {
	text  string
	words map[string]bool
}

// NormalizeDocument prepares a policy text for coverage checking.
func NormalizeDocument(policyText string) *Document {
	lowered := strings.ToLower(policyText)
	tokens := wordPattern.FindAllString(lowered, -1)

	words := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		words[tok] = true
	}

	return &Document{
		text:  strings.Join(strings.Fields(lowered), " "),
		words: words,
	}
}

// Contains reports whether the document contains the keyword as a whole
// word. Matching whole words rather than substrings keeps "test" from
// matching "latest".
func (d *Document) Contains(keyword string) bool {
	return d.words[keyword]
}

// Text returns the normalized document text.
func (d *Document) Text() string {
	return d.text
}

// Coverage is the outcome of checking one requirement against a document.
type Coverage struct {
	// Ratio is matched keywords over total keywords, in [0,1].
	Ratio float64

	// Matched and Total count the requirement's keywords.
	Matched int
	Total   int

	// Addressed reports whether Ratio met the threshold.
	Addressed bool
}

// checkCoverage computes the coverage of a requirement's keyword set in the
// document. An empty keyword set yields ratio 0 and Addressed false; a
// requirement with no significant terms can never be covered.
func checkCoverage(doc *Document, kws []string, threshold float64) Coverage {
	if len(kws) == 0 {
		return Coverage{}
	}

	matched := 0
	for _, kw := range kws {
		if doc.Contains(kw) {
			matched++
		}
	}

	ratio := float64(matched) / float64(len(kws))
	return Coverage{
		Ratio:     ratio,
		Matched:   matched,
		Total:     len(kws),
		Addressed: ratio >= threshold,
	}
}
