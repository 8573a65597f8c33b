// Package weight scores the words that survive stopword filtering. Each
// distinct word becomes a Token carrying its frequency, a single-document
// TF-IDF style weight, the spread of its positions and the variety of its
// surrounding contexts, plus a coarse semantic role derived from those.
package weight

import (
	"math"
	"sort"
	"strings"

	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/entropy"
)

// Role is the semantic role assigned to a token.
type Role string

const (
	RoleEntity   Role = "entity"
	RoleContent  Role = "content"
	RoleModifier Role = "modifier"
	RoleFunction Role = "function"
)

const (
	// PositionBuckets is the number of equal-width buckets used for
	// positional entropy.
	PositionBuckets = 10
	// ContextRadius is the number of words on each side forming a context.
	ContextRadius = 2
)

// Token is a distinct filtered word and its statistics.
type Token struct {
	Form              string  `json:"form"`
	Freq              int     `json:"frequency"`
	Positions         []int   `json:"positions"`
	Weight            float64 `json:"weight"`
	PositionalEntropy float64 `json:"positionalEntropy"`
	Diversity         float64 `json:"contextDiversity"`
	Role              Role    `json:"role"`
}

// Weigh builds tokens from a filtered word sequence. The result is sorted by
// weight, highest first, with ties broken by form.
func Weigh(words []string) []Token {
	n := len(words)
	if n == 0 {
		return nil
	}

	positions := make(map[string][]int)
	order := make([]string, 0)
	for i, w := range words {
		if _, ok := positions[w]; !ok {
			order = append(order, w)
		}
		positions[w] = append(positions[w], i)
	}

	tokens := make([]Token, 0, len(order))
	for _, form := range order {
		pos := positions[form]
		freq := len(pos)
		tok := Token{
			Form:              form,
			Freq:              freq,
			Positions:         pos,
			Weight:            Score(freq, n),
			PositionalEntropy: entropy.Shannon(entropy.Buckets(pos, n, PositionBuckets)),
			Diversity:         contextDiversity(words, pos),
		}
		tok.Role = AssignRole(tok.Weight, tok.Freq, tok.Diversity)
		tokens = append(tokens, tok)
	}

	sort.SliceStable(tokens, func(i, j int) bool {
		if tokens[i].Weight == tokens[j].Weight {
			return tokens[i].Form < tokens[j].Form
		}
		return tokens[i].Weight > tokens[j].Weight
	})
	return tokens
}

// Score is the single-document weight (f/N)·ln(N/f). It is zero for a word
// that makes up the whole sequence and for invalid counts.
func Score(freq, total int) float64 {
	if freq <= 0 || total <= 0 || freq > total {
		return 0
	}
	tf := float64(freq) / float64(total)
	return tf * math.Log(float64(total)/float64(freq))
}

// AssignRole maps weight, frequency and context diversity to a role.
// Rules are evaluated in order and the first match wins.
func AssignRole(weight float64, freq int, diversity float64) Role {
	switch {
	case weight > 0.01 && freq < 5 && diversity < 0.5:
		return RoleEntity
	case weight > 0.005 && freq > 2:
		return RoleContent
	case diversity > 0.7 && freq > 1 && freq < 10:
		return RoleModifier
	default:
		return RoleFunction
	}
}

// contextDiversity is the share of occurrences whose ±ContextRadius
// neighbourhood, the word itself excluded, has not been seen before.
func contextDiversity(words []string, positions []int) float64 {
	if len(positions) == 0 {
		return 0
	}
	contexts := make(map[string]struct{}, len(positions))
	for _, p := range positions {
		contexts[contextKey(words, p)] = struct{}{}
	}
	return float64(len(contexts)) / float64(len(positions))
}

func contextKey(words []string, at int) string {
	lo := max(0, at-ContextRadius)
	hi := min(len(words), at+ContextRadius+1)
	parts := make([]string, 0, hi-lo)
	for i := lo; i < hi; i++ {
		if i == at {
			parts = append(parts, "_")
			continue
		}
		parts = append(parts, words[i])
	}
	return strings.Join(parts, " ")
}

// Index maps token forms to tokens.
type Index map[string]*Token

// NewIndex indexes tokens by form. The index points into the given slice.
func NewIndex(tokens []Token) Index {
	idx := make(Index, len(tokens))
	for i := range tokens {
		idx[tokens[i].Form] = &tokens[i]
	}
	return idx
}

// MeanWeight returns the mean weight of tokens, 0 for none.
func MeanWeight(tokens []Token) float64 {
	if len(tokens) == 0 {
		return 0
	}
	var sum float64
	for _, t := range tokens {
		sum += t.Weight
	}
	return sum / float64(len(tokens))
}
