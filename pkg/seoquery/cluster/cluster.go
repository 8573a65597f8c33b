// Package cluster groups weighted tokens and phrases into labeled clusters
// by lexical overlap or positional proximity, in a single greedy pass.
package cluster

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/phrase"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/weight"
)

// Category is the inferred kind of a cluster.
type Category string

const (
	Quantitative Category = "quantitative"
	Entity       Category = "entity"
	Action       Category = "action"
	Descriptor   Category = "descriptor"
	Concept      Category = "concept"
	General      Category = "general"
)

const (
	// DefaultThreshold is the similarity a candidate must exceed to join.
	DefaultThreshold = 0.3
	// DefaultMaxClusters is the number of clusters kept.
	DefaultMaxClusters = 10
	// DefaultMaxTokens caps the tokens entering the candidate list.
	DefaultMaxTokens = 100
	// ProximitySpan is the distance at which proximity similarity is 0.
	ProximitySpan = 5
)

// Candidate is a token or phrase competing for cluster membership.
type Candidate struct {
	Text      string
	Words     []string
	Positions []int
	Score     float64
	// Role and Weight are set for tokens only.
	Role   weight.Role
	Weight float64
}

// Cluster is a group of related candidates.
type Cluster struct {
	Centroid  string   `json:"centroid"`
	Members   []string `json:"members"`
	Coherence float64  `json:"coherence"`
	Category  Category `json:"category"`
}

// Options tune clustering.
type Options struct {
	Threshold   float64
	MaxClusters int
	MaxTokens   int
	// Capitalized holds lowercased words seen capitalized in the source.
	Capitalized map[string]struct{}
}

func (o Options) withDefaults() Options {
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	if o.MaxClusters <= 0 {
		o.MaxClusters = DefaultMaxClusters
	}
	if o.MaxTokens <= 0 {
		o.MaxTokens = DefaultMaxTokens
	}
	return o
}

// Candidates unifies tokens, scored by weight, and phrases, scored by
// information value, into one list ranked highest first. At most maxTokens
// tokens are taken, in the order given.
func Candidates(tokens []weight.Token, phrases []phrase.Phrase, maxTokens int) []Candidate {
	if maxTokens > 0 && len(tokens) > maxTokens {
		tokens = tokens[:maxTokens]
	}
	out := make([]Candidate, 0, len(tokens)+len(phrases))
	for _, t := range tokens {
		out = append(out, Candidate{
			Text:      t.Form,
			Words:     []string{t.Form},
			Positions: t.Positions,
			Score:     t.Weight,
			Role:      t.Role,
			Weight:    t.Weight,
		})
	}
	for _, p := range phrases {
		out = append(out, Candidate{
			Text:      p.Text,
			Words:     p.Words,
			Positions: p.Positions,
			Score:     p.InfoValue,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score == out[j].Score {
			return out[i].Text < out[j].Text
		}
		return out[i].Score > out[j].Score
	})
	return out
}

// Build clusters tokens and phrases.
func Build(tokens []weight.Token, phrases []phrase.Phrase, opts Options) []Cluster {
	opts = opts.withDefaults()
	return Group(Candidates(tokens, phrases, opts.MaxTokens), opts)
}

// Group runs the greedy pass over ranked candidates. Each candidate seeds a
// cluster unless an earlier seed already took it, and a candidate belongs
// to at most one cluster. Clusters are returned by coherence, highest first.
func Group(cands []Candidate, opts Options) []Cluster {
	opts = opts.withDefaults()

	assigned := make([]bool, len(cands))
	var clusters []Cluster
	for i, seed := range cands {
		if assigned[i] {
			continue
		}
		assigned[i] = true
		c := Cluster{
			Centroid:  seed.Text,
			Members:   []string{seed.Text},
			Coherence: seed.Score,
			Category:  Categorize(seed, opts.Capitalized),
		}
		for j := i + 1; j < len(cands); j++ {
			if assigned[j] {
				continue
			}
			sim := Similarity(seed, cands[j])
			if sim <= opts.Threshold {
				continue
			}
			assigned[j] = true
			c.Members = append(c.Members, cands[j].Text)
			c.Coherence += cands[j].Score * sim
		}
		clusters = append(clusters, c)
	}

	sort.SliceStable(clusters, func(i, j int) bool {
		return clusters[i].Coherence > clusters[j].Coherence
	})
	if len(clusters) > opts.MaxClusters {
		clusters = clusters[:opts.MaxClusters]
	}
	return clusters
}

// Similarity is the Jaccard overlap of the component words when they share
// any, otherwise positional proximity (ProximitySpan-d)/ProximitySpan for a
// minimum distance d below ProximitySpan.
func Similarity(a, b Candidate) float64 {
	if j := jaccard(a.Words, b.Words); j > 0 {
		return j
	}
	d := phrase.MinDistance(a.Positions, b.Positions)
	if d < 0 || d >= ProximitySpan {
		return 0
	}
	return float64(ProximitySpan-d) / ProximitySpan
}

// Categorize infers the category of a cluster from its centroid. Candidate
// text is always lowercased, so the entity category relies on capitalized,
// the lowercased forms of words that appeared with an uppercase first letter
// in the source text.
func Categorize(c Candidate, capitalized map[string]struct{}) Category {
	if hasQuantity(c.Text) {
		return Quantitative
	}
	if c.Role == weight.RoleEntity {
		if _, ok := capitalized[c.Text]; ok {
			return Entity
		}
	}
	if c.Role == weight.RoleContent && utf8.RuneCountInString(c.Text) > 4 && c.Weight > 0.01 {
		return Action
	}
	if c.Role == weight.RoleModifier {
		return Descriptor
	}
	if len(c.Words) > 1 || strings.Contains(c.Text, " ") {
		return Concept
	}
	return General
}

func hasQuantity(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) || unicode.Is(unicode.Sc, r) {
			return true
		}
	}
	return false
}

// jaccard calculates Jaccard similarity between two string slices
func jaccard(a, b []string) float64 {
	aSet := make(map[string]struct{}, len(a))
	for _, s := range a {
		aSet[s] = struct{}{}
	}

	bSet := make(map[string]struct{}, len(b))
	for _, s := range b {
		bSet[s] = struct{}{}
	}

	intersection := 0
	for s := range aSet {
		if _, ok := bSet[s]; ok {
			intersection++
		}
	}

	union := len(aSet) + len(bSet) - intersection
	if union == 0 {
		return 0
	}

	return float64(intersection) / float64(union)
}

// MeanCoherence returns the mean cluster coherence, 0 for none.
func MeanCoherence(clusters []Cluster) float64 {
	if len(clusters) == 0 {
		return 0
	}
	var sum float64
	for _, c := range clusters {
		sum += c.Coherence
	}
	return sum / float64(len(clusters))
}
