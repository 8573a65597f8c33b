// Package config loads the analyzer tunables from YAML. Every key is
// optional; missing values keep their defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/analytics"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/cluster"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/internalerr"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/phrase"
	"github.com/Instilla-AI/seontology-mcp-server/pkg/seoquery/stoplist"
)

// Segmenter names accepted in the stopwords section.
const (
	SegmenterFixed         = "fixed"
	SegmenterProbabilistic = "probabilistic"
)

// DefaultMaxWords caps the body length, in words, before analysis.
const DefaultMaxWords = 5000

// Config represents the analyzer configuration
type Config struct {
	Limits    Limits    `yaml:"limits"`
	Stopwords Stopwords `yaml:"stopwords"`
}

// Limits bound the work done per request.
type Limits struct {
	MaxWords           int `yaml:"max_words"`
	MaxTokenCandidates int `yaml:"max_token_candidates"`
	MaxPhrases         int `yaml:"max_phrases"`
}

// Stopwords tunes stopword induction.
type Stopwords struct {
	FrequencyShare float64  `yaml:"frequency_share"`
	ShortLen       int      `yaml:"short_len"`
	SentenceShare  float64  `yaml:"sentence_share"`
	DispersedLen   int      `yaml:"dispersed_len"`
	Window         int      `yaml:"window"`
	Segmenter      string   `yaml:"segmenter"`
	Seed           int64    `yaml:"seed"`
	Always         []string `yaml:"always"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	th := stoplist.DefaultThresholds()
	return Config{
		Limits: Limits{
			MaxWords:           DefaultMaxWords,
			MaxTokenCandidates: cluster.DefaultMaxTokens,
			MaxPhrases:         phrase.DefaultLimit,
		},
		Stopwords: Stopwords{
			FrequencyShare: th.FrequencyShare,
			ShortLen:       th.ShortLen,
			SentenceShare:  th.SentenceShare,
			DispersedLen:   th.DispersedLen,
			Window:         analytics.DefaultWindow,
			Segmenter:      SegmenterFixed,
			Seed:           1,
		},
	}
}

// Load reads a YAML file on top of Defaults and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of Defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %v: %w", err, internalerr.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the analyzer cannot work with.
func (c Config) Validate() error {
	var problems []string
	if c.Limits.MaxWords <= 0 {
		problems = append(problems, "limits.max_words must be positive")
	}
	if c.Limits.MaxTokenCandidates <= 0 {
		problems = append(problems, "limits.max_token_candidates must be positive")
	}
	if c.Limits.MaxPhrases <= 0 {
		problems = append(problems, "limits.max_phrases must be positive")
	}

	s := c.Stopwords
	if s.FrequencyShare <= 0 || s.FrequencyShare >= 1 {
		problems = append(problems, "stopwords.frequency_share must be in (0, 1)")
	}
	if s.SentenceShare <= 0 || s.SentenceShare >= 1 {
		problems = append(problems, "stopwords.sentence_share must be in (0, 1)")
	}
	if s.ShortLen <= 0 {
		problems = append(problems, "stopwords.short_len must be positive")
	}
	if s.DispersedLen <= 0 {
		problems = append(problems, "stopwords.dispersed_len must be positive")
	}
	if s.Window <= 0 {
		problems = append(problems, "stopwords.window must be positive")
	}
	switch s.Segmenter {
	case SegmenterFixed, SegmenterProbabilistic:
	default:
		problems = append(problems, fmt.Sprintf("stopwords.segmenter %q is not %q or %q", s.Segmenter, SegmenterFixed, SegmenterProbabilistic))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%s: %w", strings.Join(problems, "; "), internalerr.ErrInvalidConfig)
	}
	return nil
}

// Thresholds returns the stoplist thresholds.
func (s Stopwords) Thresholds() stoplist.Thresholds {
	return stoplist.Thresholds{
		FrequencyShare: s.FrequencyShare,
		ShortLen:       s.ShortLen,
		SentenceShare:  s.SentenceShare,
		DispersedLen:   s.DispersedLen,
	}
}

// NewSegmenter returns a fresh segmenter. Probabilistic segmenters are
// seeded with Seed, so each call starts from the same random sequence.
func (s Stopwords) NewSegmenter() analytics.Segmenter {
	if s.Segmenter == SegmenterProbabilistic {
		return analytics.NewProbabilistic(s.Seed)
	}
	return analytics.FixedWindow{Size: s.Window}
}

// AlwaysStop returns the lowercased always-stop words.
func (s Stopwords) AlwaysStop() []string {
	out := make([]string, 0, len(s.Always))
	for _, w := range s.Always {
		if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
			out = append(out, w)
		}
	}
	return out
}
