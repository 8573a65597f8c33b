// Package entities pulls surface entities out of raw text with regular
// expressions: capitalized name sequences, numbers and amounts, dates,
// email addresses and URLs.
package entities

import (
	"regexp"
	"sort"
	"strings"
)

// Kind is the type of an extracted entity.
type Kind string

const (
	KindURL    Kind = "url"
	KindEmail  Kind = "email"
	KindDate   Kind = "date"
	KindNumber Kind = "number"
	KindName   Kind = "name"
)

// DefaultLimit is the number of entities returned by Extract.
const DefaultLimit = 10

// Entity is a matched span of text.
type Entity struct {
	Text string `json:"text"`
	Kind Kind   `json:"type"`
}

// urlPattern matches http and https URLs up to the next space or quote.
var urlPattern = regexp.MustCompile(`https?://[^\s<>"']+`)

// emailPattern matches standard email addresses.
var emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// datePatterns cover ISO dates, numeric day/month/year and dates with
// English month names.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
	regexp.MustCompile(`\b\d{1,2}[/.]\d{1,2}[/.]\d{2,4}\b`),
	regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+\d{1,2}(?:st|nd|rd|th)?,?\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+\d{4}\b`),
}

// numberPattern matches currency amounts, percentages and plain numbers
// with thousands or decimal separators.
var numberPattern = regexp.MustCompile(`[$€£¥]\s?\d+(?:[.,]\d+)*|\d+(?:[.,]\d+)*(?:\s?%)?`)

// namePattern matches runs of capitalized words.
var namePattern = regexp.MustCompile(`\p{Lu}\p{Ll}+(?:[ \t]+\p{Lu}\p{Ll}+)*`)

type rule struct {
	kind     Kind
	patterns []*regexp.Regexp
}

// rules are applied in priority order; a later rule cannot claim text an
// earlier one matched, so digits inside a URL are not also a number.
var rules = []rule{
	{KindURL, []*regexp.Regexp{urlPattern}},
	{KindEmail, []*regexp.Regexp{emailPattern}},
	{KindDate, datePatterns},
	{KindNumber, []*regexp.Regexp{numberPattern}},
	{KindName, []*regexp.Regexp{namePattern}},
}

type match struct {
	start, end int
	entity     Entity
}

// Extract returns up to DefaultLimit entities in order of first appearance.
func Extract(text string) []Entity {
	return ExtractN(text, DefaultLimit)
}

// ExtractN returns up to limit entities in order of first appearance,
// deduplicated case-insensitively. A limit of zero or less means no limit.
func ExtractN(text string, limit int) []Entity {
	var matches []match
	for _, r := range rules {
		for _, re := range r.patterns {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				start, end := loc[0], loc[1]
				value := strings.TrimRight(text[start:end], ".,;:!?)")
				end = start + len(value)
				if value == "" || overlaps(matches, start, end) {
					continue
				}
				matches = append(matches, match{start: start, end: end, entity: Entity{Text: value, Kind: r.kind}})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].start < matches[j].start
	})

	seen := make(map[string]struct{}, len(matches))
	out := make([]Entity, 0, len(matches))
	for _, m := range matches {
		key := strings.ToLower(m.entity.Text)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, m.entity)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func overlaps(matches []match, start, end int) bool {
	for _, m := range matches {
		if start < m.end && m.start < end {
			return true
		}
	}
	return false
}

// Texts returns the entity strings in order.
func Texts(ents []Entity) []string {
	out := make([]string, len(ents))
	for i, e := range ents {
		out[i] = e.Text
	}
	return out
}
