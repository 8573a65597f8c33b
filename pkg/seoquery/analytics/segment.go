package analytics

import "math/rand"

// Sentence approximation defaults.
const (
	// DefaultWindow is the fixed sentence length, in words, used by the
	// deterministic segmenter. It matches the mean sentence length produced
	// by the probabilistic rule below.
	DefaultWindow = 13

	// DefaultMinSentenceWords is the number of words a probabilistic
	// sentence must hold before it may end.
	DefaultMinSentenceWords = 10

	// DefaultBreakThreshold is the value a uniform draw must exceed to end
	// a probabilistic sentence.
	DefaultBreakThreshold = 0.7
)

// Segmenter splits a word sequence into approximate sentences. Sentence
// boundaries are not taken from punctuation.
type Segmenter interface {
	Segment(words []string) [][]string
}

// FixedWindow cuts the sequence every Size words. The final sentence may be
// shorter.
type FixedWindow struct {
	Size int
}

// Segment implements Segmenter.
func (f FixedWindow) Segment(words []string) [][]string {
	size := f.Size
	if size <= 0 {
		size = DefaultWindow
	}
	sentences := make([][]string, 0, len(words)/size+1)
	for start := 0; start < len(words); start += size {
		end := start + size
		if end > len(words) {
			end = len(words)
		}
		sentences = append(sentences, words[start:end])
	}
	return sentences
}

// Probabilistic accumulates words and ends a sentence once it holds at
// least MinWords words and a draw from Rand exceeds Threshold. Seed Rand to
// make the segmentation reproducible.
type Probabilistic struct {
	MinWords  int
	Threshold float64
	Rand      *rand.Rand
}

// NewProbabilistic returns a probabilistic segmenter with default settings
// seeded with seed.
func NewProbabilistic(seed int64) *Probabilistic {
	return &Probabilistic{
		MinWords:  DefaultMinSentenceWords,
		Threshold: DefaultBreakThreshold,
		Rand:      rand.New(rand.NewSource(seed)),
	}
}

// Segment implements Segmenter. A Probabilistic segmenter owns its random
// source and must not be shared between goroutines.
func (p *Probabilistic) Segment(words []string) [][]string {
	minWords := p.MinWords
	if minWords <= 0 {
		minWords = DefaultMinSentenceWords
	}
	threshold := p.Threshold
	if threshold <= 0 {
		threshold = DefaultBreakThreshold
	}
	draw := rand.Float64
	if p.Rand != nil {
		draw = p.Rand.Float64
	}

	var sentences [][]string
	start := 0
	for i := range words {
		if i+1-start >= minWords && draw() > threshold {
			sentences = append(sentences, words[start:i+1])
			start = i + 1
		}
	}
	if start < len(words) {
		sentences = append(sentences, words[start:])
	}
	return sentences
}
