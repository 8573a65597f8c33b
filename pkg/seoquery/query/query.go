// Package query classifies the search intent behind a set of clusters and
// selects the single query string that best represents a page.
package query

import (
	"math"
	"strings"

	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/cluster"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/phrase"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/weight"
)

// Type is a search intent.
type Type string

const (
	Informational Type = "informational"
	Commercial    Type = "commercial"
	Transactional Type = "transactional"
	Navigational  Type = "navigational"
)

// MaxConfidence caps the confidence score.
const MaxConfidence = 100

// contribution maps a cluster category to the intent it feeds and its factor.
func contribution(c cluster.Category) (Type, float64) {
	switch c {
	case cluster.Quantitative:
		return Commercial, 2
	case cluster.Action:
		return Transactional, 1.5
	case cluster.Entity:
		return Navigational, 1
	case cluster.Concept, cluster.Descriptor:
		return Informational, 1
	default:
		return Informational, 0.5
	}
}

// Classify accumulates category-weighted coherence per intent and returns
// the intent with the highest total. Any tie for the top, and the empty
// case, resolve to Informational.
func Classify(clusters []cluster.Cluster) Type {
	scores := Scores(clusters)

	best := Informational
	bestScore := scores[Informational]
	tied := false
	for _, t := range []Type{Commercial, Transactional, Navigational} {
		s := scores[t]
		switch {
		case s > bestScore:
			best, bestScore, tied = t, s, false
		case s == bestScore && s > 0:
			tied = true
		}
	}
	if tied {
		return Informational
	}
	return best
}

// Scores returns the accumulated score per intent.
func Scores(clusters []cluster.Cluster) map[Type]float64 {
	scores := map[Type]float64{
		Informational: 0,
		Commercial:    0,
		Transactional: 0,
		Navigational:  0,
	}
	for _, c := range clusters {
		t, f := contribution(c.Category)
		scores[t] += c.Coherence * f
	}
	return scores
}

// Select picks the main query. In order of preference: the first ranked
// phrase found in the title, the top phrase, the first ranked token found
// in the title, the top token, and finally the lowercased title.
func Select(title string, phrases []phrase.Phrase, tokens []weight.Token) string {
	lowerTitle := strings.ToLower(strings.TrimSpace(title))

	for _, p := range phrases {
		if strings.Contains(lowerTitle, p.Text) {
			return p.Text
		}
	}
	if len(phrases) > 0 {
		return phrases[0].Text
	}
	for _, t := range tokens {
		if strings.Contains(lowerTitle, t.Form) {
			return t.Form
		}
	}
	if len(tokens) > 0 {
		return tokens[0].Form
	}
	return lowerTitle
}

// Confidence is min(100, round((top cluster coherence + top phrase
// information value)·10)). Missing clusters or phrases contribute 0.
func Confidence(clusters []cluster.Cluster, phrases []phrase.Phrase) int {
	var sum float64
	if len(clusters) > 0 {
		sum += clusters[0].Coherence
	}
	if len(phrases) > 0 {
		sum += phrases[0].InfoValue
	}
	c := int(math.Round(sum * 10))
	if c > MaxConfidence {
		return MaxConfidence
	}
	if c < 0 {
		return 0
	}
	return c
}
