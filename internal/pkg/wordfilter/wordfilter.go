// Package wordfilter checks submitted text against a denylist of banned
// words and their letter-substitution variants. It is pure and does no I/O
// except for the optional denylist file loader.
package wordfilter

import (
	"fmt"
	"os"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

type ScanResult struct {
	Matched bool     `json:"matched"`
	Words   []string `json:"words,omitempty"`
}

type entry struct {
	original string
	// normalized form, word-split for the boundary check
	norm string
	// normalized form with spaces removed, for the containment check
	compact string
}

type Filter struct {
	entries []entry
}

// New returns a filter preloaded with the built-in denylist.
func New() *Filter {
	return NewWithWords(defaultDenylist)
}

// NewWithWords returns a filter containing only the given entries.
func NewWithWords(words []string) *Filter {
	f := &Filter{}
	f.AddWords(words...)
	return f
}

func (f *Filter) AddWords(words ...string) {
	for _, w := range words {
		norm := Normalize(w)
		if norm == "" {
			continue
		}
		f.entries = append(f.entries, entry{
			original: w,
			norm:     norm,
			compact:  strings.ReplaceAll(norm, " ", ""),
		})
	}
}

// LoadFile extends the denylist from a YAML file of the form:
//
//	words:
//	  - example
func (f *Filter) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var doc struct {
		Words []string `yaml:"words"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse denylist %s: %w", path, err)
	}

	f.AddWords(doc.Words...)
	return nil
}

// Normalize lower-cases the text, folds locale-specific letters to their
// closest ASCII equivalent and strips everything that is not a letter,
// digit or space. Runs of whitespace collapse to a single space.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	lastSpace := true

	for _, r := range strings.ToLower(text) {
		if folded, ok := foldTable[r]; ok {
			r = folded
		}
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastSpace = false
		case unicode.IsSpace(r):
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		case unicode.Is(unicode.Mn, r):
			// combining marks (e.g. the dot left over from lower-casing
			// a dotted capital I) are dropped, not treated as separators
		}
	}

	return strings.TrimSpace(b.String())
}

// Scan tests the text against every denylist entry using both a
// whole-word match and a plain containment match on the space-stripped
// form. The containment pass is deliberate: a boundary match alone
// misses banned words concatenated into longer tokens. Matched entries
// are reported in their original spelling, deduplicated.
func (f *Filter) Scan(text string) ScanResult {
	norm := Normalize(text)
	if norm == "" {
		return ScanResult{}
	}

	fields := strings.Fields(norm)
	compact := strings.ReplaceAll(norm, " ", "")

	var result ScanResult
	seen := make(map[string]bool)

	for _, e := range f.entries {
		hit := strings.Contains(compact, e.compact)
		if !hit {
			for _, w := range fields {
				if w == e.norm {
					hit = true
					break
				}
			}
		}
		if hit && !seen[e.original] {
			seen[e.original] = true
			result.Matched = true
			result.Words = append(result.Words, e.original)
		}
	}

	return result
}

// ScanComment scans every submitter-supplied field of a comment and
// unions the results.
func (f *Filter) ScanComment(authorName, authorEmail, content string) ScanResult {
	var result ScanResult
	seen := make(map[string]bool)

	for _, text := range []string{authorName, authorEmail, content} {
		r := f.Scan(text)
		if !r.Matched {
			continue
		}
		result.Matched = true
		for _, w := range r.Words {
			if !seen[w] {
				seen[w] = true
				result.Words = append(result.Words, w)
			}
		}
	}

	return result
}

var foldTable = map[rune]rune{
	'ç': 'c', 'ğ': 'g', 'ı': 'i', 'ö': 'o', 'ş': 's', 'ü': 'u',
	'â': 'a', 'î': 'i', 'û': 'u',
	'á': 'a', 'à': 'a', 'ä': 'a',
	'é': 'e', 'è': 'e', 'ê': 'e', 'ë': 'e',
	'í': 'i', 'ï': 'i',
	'ó': 'o', 'ò': 'o',
	'ú': 'u', 'ñ': 'n',
}
