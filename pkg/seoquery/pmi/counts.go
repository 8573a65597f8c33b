package pmi

import "sort"

// Counter maintains sentence-level co-occurrence counts for PMI calculation
type Counter struct {
	n   int64              // total number of sentences
	nx  map[string]int64   // sentence frequency per word
	nxy map[WordPair]int64 // co-occurrence count per word pair
}

// WordPair represents an ordered pair of words (W1 < W2)
type WordPair struct {
	W1, W2 string
}

// NewCounter creates a new co-occurrence counter
func NewCounter() *Counter {
	return &Counter{
		nx:  make(map[string]int64),
		nxy: make(map[WordPair]int64),
	}
}

// AddSentence updates counts for one sentence. Repeated words inside the
// sentence are counted once.
func (c *Counter) AddSentence(words []string) {
	c.n++

	seen := make(map[string]struct{}, len(words))
	unique := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		unique = append(unique, w)
		c.nx[w]++
	}

	sort.Strings(unique)
	for i := 0; i < len(unique); i++ {
		for j := i + 1; j < len(unique); j++ {
			c.nxy[WordPair{W1: unique[i], W2: unique[j]}]++
		}
	}
}

// PairCount returns the co-occurrence count for a word pair
func (c *Counter) PairCount(w1, w2 string) int64 {
	if w1 > w2 {
		w1, w2 = w2, w1
	}
	return c.nxy[WordPair{W1: w1, W2: w2}]
}

// WordCount returns the number of sentences containing w
func (c *Counter) WordCount(w string) int64 {
	return c.nx[w]
}

// Sentences returns the number of sentences processed
func (c *Counter) Sentences() int64 {
	return c.n
}

// UniqueWords returns the number of distinct words seen
func (c *Counter) UniqueWords() int {
	return len(c.nx)
}
