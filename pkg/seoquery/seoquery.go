// Package seoquery derives the primary search query of a web page from its
// title, meta description and body text. The analysis is purely statistical:
// stopwords are induced from the text itself, words are weighted, phrases
// extracted and clustered, and the clusters decide the search intent.
package seoquery

import (
	"context"
	"fmt"
	"strings"

	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/autotune/stopwords"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/cluster"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/config"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/entities"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/ingest"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/langprofile"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/phrase"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/query"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/weight"
)

// Sizes of the lists carried by a Result.
const (
	MaxEntities   = 10
	MaxKeyphrases = 5
	MaxClusters   = 5
	MaxTokens     = 10
	MaxStopWords  = 10
)

// Analyzer runs the analysis pipeline. It holds only configuration and is
// safe for concurrent use.
type Analyzer struct {
	cfg config.Config
}

// New creates an analyzer. The configuration is validated.
func New(cfg config.Config) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{cfg: cfg}, nil
}

// NewDefault creates an analyzer with config.Defaults.
func NewDefault() *Analyzer {
	return &Analyzer{cfg: config.Defaults()}
}

// Config returns the analyzer configuration.
func (a *Analyzer) Config() config.Config {
	return a.cfg
}

// Request is the text of one page. Language, when set, replaces detection.
type Request struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body"`
	Language    string `json:"language,omitempty"`
}

// Metrics summarises an analysis.
type Metrics struct {
	TokenCount           int     `json:"tokenCount"`
	TotalWords           int     `json:"totalWords"`
	FilteredWords        int     `json:"filteredWords"`
	MeanWeight           float64 `json:"meanWeight"`
	VocabularyRichness   float64 `json:"vocabularyRichness"`
	MeanClusterCoherence float64 `json:"meanClusterCoherence"`
	Truncated            bool    `json:"truncated"`
}

// Result is the outcome of Analyze.
type Result struct {
	MainQuery          string              `json:"mainQuery"`
	QueryType          query.Type          `json:"queryType"`
	Confidence         int                 `json:"confidence"`
	Language           string              `json:"language"`
	LanguageConfidence float64             `json:"languageConfidence"`
	Profile            langprofile.Profile `json:"profile"`
	Entities           []entities.Entity   `json:"entities"`
	Keyphrases         []phrase.Phrase     `json:"keyphrases"`
	Clusters           []cluster.Cluster   `json:"clusters"`
	Tokens             []weight.Token      `json:"tokens"`
	StopWords          []string            `json:"stopWords"`
	Metrics            Metrics             `json:"metrics"`
}

// Analyze runs the pipeline on req. Title and body must not be blank;
// otherwise an error wrapping internalerr.ErrInvalidInput is returned.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (Result, error) {
	page := ingest.Page{
		Title:       req.Title,
		Description: req.Description,
		BodyText:    req.Body,
	}
	if err := page.Validate(); err != nil {
		return Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var truncated bool
	page.BodyText, truncated = truncateWords(page.BodyText, a.cfg.Limits.MaxWords)
	text := page.Combined()

	profile := langprofile.Detect(text)
	if lang := strings.ToLower(strings.TrimSpace(req.Language)); lang != "" {
		profile = langprofile.Override(lang)
	}

	words := ingest.Words(text)
	sw := a.cfg.Stopwords
	stops, stats, err := stopwords.Induce(ctx, words, sw.NewSegmenter(), sw.Thresholds(), sw.AlwaysStop())
	if err != nil {
		return Result{}, fmt.Errorf("induce stopwords: %w", err)
	}
	stopList := stops.All()

	filtered := ingest.NewTokenizer(stopList).Filter(words)
	tokens := weight.Weigh(filtered)
	phrases := phrase.Extract(filtered, weight.NewIndex(tokens), text, phrase.Options{
		Limit:        a.cfg.Limits.MaxPhrases,
		Cooccurrence: stats.Cooccurrence,
	})
	clusters := cluster.Build(tokens, phrases, cluster.Options{
		MaxTokens:   a.cfg.Limits.MaxTokenCandidates,
		Capitalized: ingest.Capitalized(text),
	})

	res := Result{
		MainQuery:          query.Select(page.Title, phrases, tokens),
		QueryType:          query.Classify(clusters),
		Confidence:         query.Confidence(clusters, phrases),
		Language:           profile.Language,
		LanguageConfidence: profile.Confidence,
		Profile:            profile,
		Entities:           entities.ExtractN(text, MaxEntities),
		Keyphrases:         head(phrases, MaxKeyphrases),
		Clusters:           head(clusters, MaxClusters),
		Tokens:             head(tokens, MaxTokens),
		StopWords:          head(stopList, MaxStopWords),
		Metrics: Metrics{
			TokenCount:           len(tokens),
			TotalWords:           len(words),
			FilteredWords:        len(filtered),
			MeanWeight:           weight.MeanWeight(tokens),
			MeanClusterCoherence: cluster.MeanCoherence(clusters),
			Truncated:            truncated,
		},
	}
	if len(filtered) > 0 {
		res.Metrics.VocabularyRichness = float64(len(tokens)) / float64(len(filtered))
	}
	return res, nil
}

// truncateWords keeps the first limit whitespace-separated words of s.
func truncateWords(s string, limit int) (string, bool) {
	if limit <= 0 {
		return s, false
	}
	fields := strings.Fields(s)
	if len(fields) <= limit {
		return s, false
	}
	return strings.Join(fields[:limit], " "), true
}

// head returns a copy of at most n leading elements, never nil.
func head[T any](s []T, n int) []T {
	if len(s) > n {
		s = s[:n]
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
