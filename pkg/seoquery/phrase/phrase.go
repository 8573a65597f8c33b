// Package phrase extracts two- and three-word phrases from the filtered word
// stream and ranks them by how tightly their words co-occur and how much
// weight they carry.
package phrase

import (
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/pmi"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/weight"
)

const (
	// DefaultLimit is the number of phrases kept after ranking.
	DefaultLimit = 20
	// MinCoherence is the exclusive lower bound for a kept phrase.
	MinCoherence = 0.1
	// CoherenceSpan is the mean distance at which coherence reaches zero.
	CoherenceSpan = 10.0
)

// Phrase is a ranked n-gram.
type Phrase struct {
	Text        string   `json:"text"`
	Words       []string `json:"words"`
	Count       int      `json:"count"`
	Coherence   float64  `json:"coherence"`
	InfoValue   float64  `json:"informationValue"`
	Positions   []int    `json:"positions"`
	Association float64  `json:"association"`
}

// Score is the ranking key, information value scaled by coherence.
func (p Phrase) Score() float64 {
	return p.InfoValue * p.Coherence
}

// Options tune extraction.
type Options struct {
	// Limit caps the number of returned phrases. Zero means DefaultLimit.
	Limit int
	// Cooccurrence, when set, is used to fill Phrase.Association.
	Cooccurrence *pmi.Counter
}

// Extract builds every adjacent 2- and 3-gram of words, keeps those that
// occur literally in text (case-insensitive) and whose words all have a
// token, and returns them ranked by Score, highest first.
func Extract(words []string, tokens weight.Index, text string, opts Options) []Phrase {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	lower := strings.ToLower(text)
	calc := pmi.NewCalculator(1.0)

	seen := make(map[string]int)
	var phrases []Phrase
	for n := 2; n <= 3; n++ {
		for i := 0; i+n <= len(words); i++ {
			gram := words[i : i+n]
			key := strings.Join(gram, " ")
			if at, ok := seen[key]; ok {
				if at >= 0 {
					phrases[at].Positions = append(phrases[at].Positions, i)
				}
				continue
			}

			p, ok := build(gram, key, tokens, lower)
			if !ok {
				seen[key] = -1
				continue
			}
			p.Positions = []int{i}
			if opts.Cooccurrence != nil {
				p.Association = calc.Association(opts.Cooccurrence, gram[0], gram[n-1])
			}
			seen[key] = len(phrases)
			phrases = append(phrases, p)
		}
	}

	kept := phrases[:0]
	for _, p := range phrases {
		if p.Coherence > MinCoherence {
			kept = append(kept, p)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		si, sj := kept[i].Score(), kept[j].Score()
		if si == sj {
			return kept[i].Text < kept[j].Text
		}
		return si > sj
	})
	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}

func build(gram []string, key string, tokens weight.Index, lowerText string) (Phrase, bool) {
	count := strings.Count(lowerText, key)
	if count == 0 {
		return Phrase{}, false
	}

	positions := make([][]int, len(gram))
	var weightSum float64
	for i, w := range gram {
		tok, ok := tokens[w]
		if !ok || len(tok.Positions) == 0 {
			return Phrase{}, false
		}
		positions[i] = tok.Positions
		weightSum += tok.Weight
	}

	n := float64(len(gram))
	return Phrase{
		Text:      key,
		Words:     append([]string(nil), gram...),
		Count:     count,
		Coherence: Coherence(positions),
		InfoValue: weightSum / n * math.Log(n+1),
	}, true
}

// Coherence averages the minimum distance over every pair of position
// lists and maps it to max(0, 1 - mean/CoherenceSpan).
func Coherence(positions [][]int) float64 {
	var sum float64
	pairs := 0
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			d := MinDistance(positions[i], positions[j])
			if d < 0 {
				return 0
			}
			sum += float64(d)
			pairs++
		}
	}
	if pairs == 0 {
		return 0
	}
	return math.Max(0, 1-sum/float64(pairs)/CoherenceSpan)
}

// MinDistance returns the smallest |x-y| for x in a and y in b. Both lists
// must be sorted ascending. When a and b hold the same positions, the gap
// between distinct occurrences is used, or 0 for a single occurrence. It
// returns -1 if either list is empty.
func MinDistance(a, b []int) int {
	if len(a) == 0 || len(b) == 0 {
		return -1
	}
	if slices.Equal(a, b) {
		if len(a) == 1 {
			return 0
		}
		best := a[1] - a[0]
		for i := 2; i < len(a); i++ {
			if d := a[i] - a[i-1]; d < best {
				best = d
			}
		}
		return best
	}

	best := -1
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		d := a[i] - b[j]
		if d < 0 {
			d = -d
		}
		if best < 0 || d < best {
			best = d
		}
		if best == 0 {
			break
		}
		if a[i] < b[j] {
			i++
		} else {
			j++
		}
	}
	return best
}

// Texts returns the phrase strings in order.
func Texts(phrases []Phrase) []string {
	out := make([]string, len(phrases))
	for i, p := range phrases {
		out[i] = p.Text
	}
	return out
}
