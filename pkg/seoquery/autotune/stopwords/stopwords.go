// Package stopwords runs stopword induction for one document: it pulls word
// statistics from a provider, asks the stoplist manager for candidates and
// records the accepted ones on the manager.
package stopwords

import (
	"context"
	"errors"

	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/analytics"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/stoplist"
)

// StatsProvider exposes the aggregated metrics required for stopword tuning.
type StatsProvider interface {
	StopwordStats(ctx context.Context) ([]stoplist.Stats, error)
}

// AutoTuner produces stopwords from document statistics.
type AutoTuner struct {
	Provider   StatsProvider
	Manager    *stoplist.Manager
	Thresholds stoplist.Thresholds
}

// Run collects stats, produces candidates and adds every candidate to the
// manager. Candidates are returned highest score first.
func (t *AutoTuner) Run(ctx context.Context) ([]stoplist.Candidate, error) {
	if t.Provider == nil {
		return nil, errors.New("stopwords autotune: nil stats provider")
	}
	if t.Manager == nil {
		return nil, errors.New("stopwords autotune: nil manager")
	}

	stats, err := t.Provider.StopwordStats(ctx)
	if err != nil {
		return nil, err
	}

	candidates := t.Manager.SuggestCandidates(stats, t.Thresholds)
	for _, cand := range candidates {
		t.Manager.Add(cand.Word, cand.Reason)
	}
	return candidates, nil
}

// Induce analyzes words with seg and returns a manager holding the
// induced stopwords together with the statistics they came from. Words in
// always are on the list from the start.
func Induce(ctx context.Context, words []string, seg analytics.Segmenter, th stoplist.Thresholds, always []string) (*stoplist.Manager, analytics.Stats, error) {
	a := analytics.NewAnalyzerWithSegmenter(seg)
	a.Process(words)
	stats := a.Snapshot()

	tuner := AutoTuner{
		Provider:   analytics.NewStopwordStatsProvider(stats),
		Manager:    stoplist.NewManager(always),
		Thresholds: th,
	}
	if _, err := tuner.Run(ctx); err != nil {
		return nil, analytics.Stats{}, err
	}
	return tuner.Manager, stats, nil
}
