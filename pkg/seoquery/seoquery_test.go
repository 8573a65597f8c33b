package seoquery

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"slices"
	"sort"
	"strings"
	"testing"

	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/config"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/internalerr"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/query"
)

// pricedLaptops is a catalog page dense with price amounts.
var pricedLaptops = Request{
	Title:       "Best Budget Laptops 2024",
	Description: "Compare prices and find cheap laptops",
	Body: "Budget laptops under $499.99 deliver surprising performance. " +
		"Lenovo IdeaPad laptops cost $499.99 during holiday promotions. " +
		"Refurbished notebooks from $349.99 remain popular with students. " +
		"Gaming laptops start around $899.99 while premium ultrabooks reach $1,299.99 quickly. " +
		"Compare laptops price against warranty coverage before purchasing. " +
		"Cheap notebooks at $499.99 include backlit keyboards. " +
		"Chromebook models priced $349.99 suit classrooms. " +
		"Business machines near $1,299.99 offer docking compatibility. " +
		"Laptops price comparison tables highlight $499.99 bestsellers. " +
		"Discounted notebooks often drop to $349.99 after weekend clearance. " +
		"Student bundles priced $499.99 add headphones. " +
		"Convertible tablets retail $899.99 with stylus support.",
}

// repeatedLaptops is a thin page that repeats a few terms.
var repeatedLaptops = Request{
	Title:       "Best Budget Laptops 2024",
	Description: "Compare prices and find cheap laptops",
	Body:        strings.Repeat("Laptops... laptops... price comparison... ", 20),
}

func analyze(t *testing.T, a *Analyzer, req Request) Result {
	t.Helper()
	res, err := a.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return res
}

func TestAnalyzePricedLaptopCatalog(t *testing.T) {
	res := analyze(t, NewDefault(), pricedLaptops)

	if res.QueryType != query.Commercial {
		t.Errorf("query type = %s, want %s", res.QueryType, query.Commercial)
	}
	if res.MainQuery != "budget laptops" {
		t.Errorf("main query = %q, want %q", res.MainQuery, "budget laptops")
	}
	if slices.Contains(res.StopWords, res.MainQuery) {
		t.Errorf("main query %q is a stopword", res.MainQuery)
	}
	for _, w := range []string{"cheap", "price"} {
		if !slices.Contains(res.StopWords, w) {
			t.Errorf("expected stopword %q in %v", w, res.StopWords)
		}
	}

	if len(res.Tokens) == 0 {
		t.Fatal("expected tokens")
	}
	if res.Tokens[0].Form != "laptops" {
		t.Errorf("top token = %q, want laptops", res.Tokens[0].Form)
	}
	if len(res.Keyphrases) > MaxKeyphrases || len(res.Clusters) > MaxClusters ||
		len(res.Tokens) > MaxTokens || len(res.StopWords) > MaxStopWords || len(res.Entities) > MaxEntities {
		t.Errorf("result lists exceed their caps: %d keyphrases, %d clusters, %d tokens, %d stopwords, %d entities",
			len(res.Keyphrases), len(res.Clusters), len(res.Tokens), len(res.StopWords), len(res.Entities))
	}
	if res.Confidence <= 0 || res.Confidence > 100 {
		t.Errorf("confidence = %d, want (0, 100]", res.Confidence)
	}
}

// On a page of repeated terms "2024" is short and frequent enough to be
// induced as a stopword, so no cluster is quantitative and the action
// cluster around "comparison" decides the intent.
func TestAnalyzeRepeatedLaptopsPage(t *testing.T) {
	res := analyze(t, NewDefault(), repeatedLaptops)

	if res.MainQuery != "budget laptops" {
		t.Errorf("main query = %q, want %q", res.MainQuery, "budget laptops")
	}
	if !strings.Contains(res.MainQuery, "laptops") || !strings.Contains(res.MainQuery, " ") {
		t.Errorf("main query %q is not a phrase containing laptops", res.MainQuery)
	}
	if slices.Contains(res.StopWords, res.MainQuery) {
		t.Errorf("main query %q is a stopword", res.MainQuery)
	}
	if want := []string{"2024", "and", "best", "find", "price"}; !slices.Equal(res.StopWords, want) {
		t.Errorf("stopwords = %v, want %v", res.StopWords, want)
	}
	if res.QueryType != query.Transactional {
		t.Errorf("query type = %s, want %s", res.QueryType, query.Transactional)
	}
	if res.Confidence != 12 {
		t.Errorf("confidence = %d, want 12", res.Confidence)
	}
	if len(res.Clusters) == 0 || res.Clusters[0].Centroid != "comparison" {
		t.Errorf("top cluster = %+v, want centroid comparison", res.Clusters)
	}
}

func TestAnalyzeInvariants(t *testing.T) {
	res := analyze(t, NewDefault(), pricedLaptops)

	if !sort.SliceIsSorted(res.Tokens, func(i, j int) bool {
		return res.Tokens[i].Weight > res.Tokens[j].Weight
	}) {
		t.Error("tokens not sorted by weight")
	}
	for _, tok := range res.Tokens {
		if tok.Weight < 0 {
			t.Errorf("token %q has negative weight %v", tok.Form, tok.Weight)
		}
	}

	source := strings.ToLower(pricedLaptops.Title + " " + pricedLaptops.Description + " " + pricedLaptops.Body)
	for _, p := range res.Keyphrases {
		if p.Coherence <= 0.1 || p.Count < 1 {
			t.Errorf("phrase %q: coherence %v count %d", p.Text, p.Coherence, p.Count)
		}
		if !strings.Contains(source, p.Text) {
			t.Errorf("phrase %q does not occur in the source", p.Text)
		}
	}

	seen := make(map[string]bool)
	for _, c := range res.Clusters {
		for _, m := range c.Members {
			if seen[m] {
				t.Errorf("%q appears in two clusters", m)
			}
			seen[m] = true
		}
	}

	m := res.Metrics
	if m.VocabularyRichness <= 0 || m.VocabularyRichness > 1 {
		t.Errorf("richness = %v, want (0, 1]", m.VocabularyRichness)
	}
	if m.TokenCount < len(res.Tokens) {
		t.Errorf("token count %d below reported tokens %d", m.TokenCount, len(res.Tokens))
	}
	if want := float64(m.TokenCount) / float64(m.FilteredWords); math.Abs(want-m.VocabularyRichness) > 1e-12 {
		t.Errorf("richness = %v, want %v", m.VocabularyRichness, want)
	}
	if m.Truncated {
		t.Error("body should not be truncated")
	}
	if !sort.StringsAreSorted(res.StopWords) {
		t.Errorf("stopwords not sorted: %v", res.StopWords)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	a := NewDefault()
	b1, err := json.Marshal(analyze(t, a, pricedLaptops))
	if err != nil {
		t.Fatal(err)
	}
	b2, err := json.Marshal(analyze(t, a, pricedLaptops))
	if err != nil {
		t.Fatal(err)
	}
	if string(b1) != string(b2) {
		t.Errorf("results differ:\n%s\n%s", b1, b2)
	}
}

func TestAnalyzeProbabilisticSegmenterIsReproducible(t *testing.T) {
	cfg := config.Defaults()
	cfg.Stopwords.Segmenter = config.SegmenterProbabilistic
	cfg.Stopwords.Seed = 7
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	first := analyze(t, a, pricedLaptops)
	second := analyze(t, a, pricedLaptops)
	if !reflect.DeepEqual(first, second) {
		t.Error("seeded probabilistic runs differ")
	}
}

func TestAnalyzeRequiresTitleAndBody(t *testing.T) {
	a := NewDefault()

	_, err := a.Analyze(context.Background(), Request{Title: "Best Budget Laptops", Body: ""})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("empty body: expected ErrInvalidInput, got %v", err)
	}

	_, err = a.Analyze(context.Background(), Request{Title: "   ", Body: "Laptops and more laptops"})
	if !errors.Is(err, internalerr.ErrInvalidInput) {
		t.Errorf("blank title: expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyzeFrench(t *testing.T) {
	res := analyze(t, NewDefault(), Request{
		Title: "Musée du Louvre",
		Body:  "Les élèves étudient la littérature française avec beaucoup de passion",
	})
	if res.Language != "fr" {
		t.Errorf("language = %q, want fr", res.Language)
	}
	if math.Abs(res.LanguageConfidence-0.8) > 1e-9 {
		t.Errorf("language confidence = %v, want 0.8", res.LanguageConfidence)
	}
}

func TestAnalyzeLanguageOverride(t *testing.T) {
	res := analyze(t, NewDefault(), Request{
		Title:    "Musée du Louvre",
		Body:     "Les élèves étudient la littérature française avec beaucoup de passion",
		Language: " IT ",
	})
	if res.Language != "it" || res.LanguageConfidence != 1.0 {
		t.Errorf("language = %q (%v), want it (1.0)", res.Language, res.LanguageConfidence)
	}
	if res.Profile.AvgWordLength != 0 {
		t.Errorf("override should leave features at zero, got %+v", res.Profile)
	}
}

func TestAnalyzeDegenerateBody(t *testing.T) {
	res := analyze(t, NewDefault(), Request{Title: "Go", Body: "!!! ???"})

	if res.MainQuery != "go" {
		t.Errorf("main query = %q, want go", res.MainQuery)
	}
	if res.QueryType != query.Informational {
		t.Errorf("query type = %s, want %s", res.QueryType, query.Informational)
	}
	if res.Confidence != 0 {
		t.Errorf("confidence = %d, want 0", res.Confidence)
	}
	if len(res.Tokens) != 0 || len(res.Keyphrases) != 0 || len(res.Clusters) != 0 {
		t.Errorf("expected empty collections, got %d tokens, %d phrases, %d clusters",
			len(res.Tokens), len(res.Keyphrases), len(res.Clusters))
	}
	if res.Metrics.VocabularyRichness != 0 {
		t.Errorf("richness = %v, want 0", res.Metrics.VocabularyRichness)
	}
}

func TestAnalyzeTruncatesBody(t *testing.T) {
	cfg := config.Defaults()
	cfg.Limits.MaxWords = 5
	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	res := analyze(t, a, pricedLaptops)
	if !res.Metrics.Truncated {
		t.Error("expected truncation")
	}

	head := len(strings.Fields(pricedLaptops.Title)) + len(strings.Fields(pricedLaptops.Description))
	if res.Metrics.TotalWords != head+5 {
		t.Errorf("total words = %d, want %d", res.Metrics.TotalWords, head+5)
	}
}

func TestAnalyzeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewDefault().Analyze(ctx, pricedLaptops); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Limits.MaxPhrases = 0
	if _, err := New(cfg); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
