// Package analytics gathers the per-document word statistics that drive
// stopword induction: raw frequency, sentence dispersion and sentence-level
// co-occurrence.
package analytics

import (
	"context"
	"sort"

	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/pmi"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/stoplist"
)

// Analyzer aggregates word and sentence statistics over a word sequence.
type Analyzer struct {
	segmenter  Segmenter
	totalWords int64
	sentences  int64
	wordFreq   map[string]int64
	sentenceDF map[string]int64
	cooc       *pmi.Counter
}

// NewAnalyzer creates an analyzer using the fixed-window segmenter.
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithSegmenter(FixedWindow{Size: DefaultWindow})
}

// NewAnalyzerWithSegmenter creates an analyzer with a custom segmenter.
// A nil segmenter falls back to the fixed window.
func NewAnalyzerWithSegmenter(seg Segmenter) *Analyzer {
	if seg == nil {
		seg = FixedWindow{Size: DefaultWindow}
	}
	return &Analyzer{
		segmenter:  seg,
		wordFreq:   make(map[string]int64),
		sentenceDF: make(map[string]int64),
		cooc:       pmi.NewCounter(),
	}
}

// Process consumes a lowercased word sequence.
func (a *Analyzer) Process(words []string) {
	for _, w := range words {
		if w == "" {
			continue
		}
		a.totalWords++
		a.wordFreq[w]++
	}

	for _, sentence := range a.segmenter.Segment(words) {
		a.sentences++
		seen := make(map[string]struct{}, len(sentence))
		for _, w := range sentence {
			if w == "" {
				continue
			}
			if _, ok := seen[w]; ok {
				continue
			}
			seen[w] = struct{}{}
			a.sentenceDF[w]++
		}
		a.cooc.AddSentence(sentence)
	}
}

// Stats exposes the aggregated counts.
type Stats struct {
	TotalWords   int64
	Sentences    int64
	WordFreq     map[string]int64
	SentenceDF   map[string]int64
	Cooccurrence *pmi.Counter
}

// Snapshot returns a copy of the accumulated counts. The co-occurrence
// counter is shared, not copied.
func (a *Analyzer) Snapshot() Stats {
	freq := make(map[string]int64, len(a.wordFreq))
	for w, c := range a.wordFreq {
		freq[w] = c
	}
	df := make(map[string]int64, len(a.sentenceDF))
	for w, c := range a.sentenceDF {
		df[w] = c
	}
	return Stats{
		TotalWords:   a.totalWords,
		Sentences:    a.sentences,
		WordFreq:     freq,
		SentenceDF:   df,
		Cooccurrence: a.cooc,
	}
}

// StopwordStats converts the counts into stoplist statistics, ordered by word.
func (s Stats) StopwordStats() []stoplist.Stats {
	if s.TotalWords == 0 {
		return nil
	}
	out := make([]stoplist.Stats, 0, len(s.WordFreq))
	for w, freq := range s.WordFreq {
		st := stoplist.Stats{
			Word:      w,
			Freq:      freq,
			RelFreq:   float64(freq) / float64(s.TotalWords),
			Sentences: s.SentenceDF[w],
		}
		if s.Sentences > 0 {
			st.SentenceShare = float64(st.Sentences) / float64(s.Sentences)
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Word < out[j].Word
	})
	return out
}

// StopwordStatsProvider adapts Analyzer stats to the autotune interface.
type StopwordStatsProvider struct {
	stats Stats
}

func NewStopwordStatsProvider(stats Stats) *StopwordStatsProvider {
	return &StopwordStatsProvider{stats: stats}
}

func (p *StopwordStatsProvider) StopwordStats(ctx context.Context) ([]stoplist.Stats, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.stats.StopwordStats(), nil
}
