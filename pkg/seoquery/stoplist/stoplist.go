// Package stoplist induces a document-specific stopword set from frequency
// and sentence-dispersion statistics. There is no fixed dictionary: a word
// is a stopword only because of how it behaves in the text at hand.
package stoplist

import (
	"sort"
	"unicode/utf8"
)

// Manager holds the induced stopwords and why each was chosen
type Manager struct {
	stops map[string]Reason
}

// Reason explains why a word is a stopword
type Reason struct {
	HighFrequency bool    // short word above the relative-frequency threshold
	Dispersed     bool    // short-ish word present in many sentences
	RelFreq       float64 // share of all words
	SentenceShare float64 // share of sentences containing the word
}

// NewManager creates a new stoplist manager
func NewManager(initialStops []string) *Manager {
	stops := make(map[string]Reason, len(initialStops))
	for _, s := range initialStops {
		stops[s] = Reason{}
	}
	return &Manager{stops: stops}
}

// IsStop checks if a word is a stopword
func (m *Manager) IsStop(word string) bool {
	_, ok := m.stops[word]
	return ok
}

// Add adds a word to the stoplist with a reason
func (m *Manager) Add(word string, reason Reason) {
	m.stops[word] = reason
}

// Remove removes a word from the stoplist
func (m *Manager) Remove(word string) {
	delete(m.stops, word)
}

// ReasonFor returns the recorded reason for a stopword.
func (m *Manager) ReasonFor(word string) (Reason, bool) {
	r, ok := m.stops[word]
	return r, ok
}

// All returns all stopwords in lexical order
func (m *Manager) All() []string {
	result := make([]string, 0, len(m.stops))
	for s := range m.stops {
		result = append(result, s)
	}
	sort.Strings(result)
	return result
}

// Stats holds the per-word statistics for candidate evaluation
type Stats struct {
	Word          string
	Freq          int64
	RelFreq       float64 // Freq / total words
	Sentences     int64   // sentences containing the word
	SentenceShare float64 // Sentences / total sentences
}

// Candidate represents a candidate stopword
type Candidate struct {
	Word   string
	Reason Reason
	Score  float64
}

// Thresholds defines criteria for stopword identification. A word qualifies
// when its relative frequency exceeds FrequencyShare and it has at most
// ShortLen runes, or when the share of sentences containing it exceeds
// SentenceShare and it has at most DispersedLen runes.
type Thresholds struct {
	FrequencyShare float64
	ShortLen       int
	SentenceShare  float64
	DispersedLen   int
}

// DefaultThresholds returns the default induction thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		FrequencyShare: 0.01,
		ShortLen:       4,
		SentenceShare:  0.2,
		DispersedLen:   6,
	}
}

// withDefaults fills zero fields from DefaultThresholds.
func (t Thresholds) withDefaults() Thresholds {
	d := DefaultThresholds()
	if t.FrequencyShare == 0 {
		t.FrequencyShare = d.FrequencyShare
	}
	if t.ShortLen == 0 {
		t.ShortLen = d.ShortLen
	}
	if t.SentenceShare == 0 {
		t.SentenceShare = d.SentenceShare
	}
	if t.DispersedLen == 0 {
		t.DispersedLen = d.DispersedLen
	}
	return t
}

// SuggestCandidates returns the words that qualify as stopwords, highest
// score first. Words already on the list are skipped.
func (m *Manager) SuggestCandidates(stats []Stats, thresholds Thresholds) []Candidate {
	th := thresholds.withDefaults()

	var candidates []Candidate
	for _, s := range stats {
		if m.IsStop(s.Word) {
			continue
		}

		n := utf8.RuneCountInString(s.Word)
		reason := Reason{
			HighFrequency: s.RelFreq > th.FrequencyShare && n <= th.ShortLen,
			Dispersed:     s.SentenceShare > th.SentenceShare && n <= th.DispersedLen,
			RelFreq:       s.RelFreq,
			SentenceShare: s.SentenceShare,
		}
		if !reason.HighFrequency && !reason.Dispersed {
			continue
		}

		candidates = append(candidates, Candidate{
			Word:   s.Word,
			Reason: reason,
			Score:  (s.RelFreq + s.SentenceShare) / 2,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score == candidates[j].Score {
			return candidates[i].Word < candidates[j].Word
		}
		return candidates[i].Score > candidates[j].Score
	})
	return candidates
}
