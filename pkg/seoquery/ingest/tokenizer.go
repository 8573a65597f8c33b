package ingest

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Words lowercases text, splits it on whitespace and trims punctuation
// from both edges of every word. Inner punctuation is kept, so "$1,299.99."
// becomes "$1,299.99". Words that are pure punctuation are dropped.
func Words(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		if w := cleanWord(f); w != "" {
			words = append(words, w)
		}
	}
	return words
}

// cleanWord strips leading and trailing punctuation. Currency and other
// symbols are not punctuation and survive.
func cleanWord(word string) string {
	return strings.TrimFunc(word, unicode.IsPunct)
}

// StripPunctuation lowercases text and removes every rune that is not a
// letter, a digit or whitespace.
func StripPunctuation(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Capitalized returns the lowercased forms of words that appear at least
// once with an uppercase first letter in text.
func Capitalized(text string) map[string]struct{} {
	caps := make(map[string]struct{})
	for _, f := range strings.Fields(text) {
		w := cleanWord(f)
		r, _ := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError || !unicode.IsUpper(r) {
			continue
		}
		caps[strings.ToLower(w)] = struct{}{}
	}
	return caps
}

// Tokenizer filters word sequences against a stopword set.
type Tokenizer struct {
	stopwords map[string]struct{}
}

// NewTokenizer creates a new tokenizer with the given stopword list
func NewTokenizer(stopwords []string) *Tokenizer {
	stops := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{stopwords: stops}
}

// Tokenize splits text into words and filters them.
func (t *Tokenizer) Tokenize(text string) []string {
	return t.Filter(Words(text))
}

// Filter drops stopwords and single-character words, preserving order.
func (t *Tokenizer) Filter(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if utf8.RuneCountInString(w) <= 1 {
			continue
		}
		if t.IsStopword(w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// IsStopword reports whether word is in the stopword set.
func (t *Tokenizer) IsStopword(word string) bool {
	_, ok := t.stopwords[word]
	return ok
}
