package stoplist

import (
	"testing"
)

func TestManagerBasic(t *testing.T) {
	mgr := NewManager([]string{"the", "a", "and"})

	if !mgr.IsStop("the") {
		t.Error("'the' should be a stopword")
	}

	if mgr.IsStop("hello") {
		t.Error("'hello' should not be a stopword")
	}
}

func TestManagerAddRemove(t *testing.T) {
	mgr := NewManager([]string{"the"})

	mgr.Add("test", Reason{HighFrequency: true, RelFreq: 0.2})

	if !mgr.IsStop("test") {
		t.Error("'test' should be stopword after adding")
	}
	if r, ok := mgr.ReasonFor("test"); !ok || !r.HighFrequency {
		t.Errorf("Reason should be recorded, got %+v", r)
	}

	mgr.Remove("test")

	if mgr.IsStop("test") {
		t.Error("'test' should not be stopword after removing")
	}
}

func TestManagerAllSorted(t *testing.T) {
	mgr := NewManager([]string{"the", "a", "and"})

	all := mgr.All()

	want := []string{"a", "and", "the"}
	if len(all) != len(want) {
		t.Fatalf("Expected %d stopwords, got %d", len(want), len(all))
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("All()[%d] = %q, want %q", i, all[i], want[i])
		}
	}
}

func TestSuggestCandidates(t *testing.T) {
	mgr := NewManager(nil)

	stats := []Stats{
		{Word: "the", RelFreq: 0.08, SentenceShare: 0.9},     // both criteria
		{Word: "laptops", RelFreq: 0.05, SentenceShare: 0.6}, // too long for either
		{Word: "with", RelFreq: 0.005, SentenceShare: 0.3},   // dispersed only
		{Word: "cpu", RelFreq: 0.02, SentenceShare: 0.1},     // frequent only
		{Word: "budget", RelFreq: 0.009, SentenceShare: 0.1}, // neither
	}

	candidates := mgr.SuggestCandidates(stats, DefaultThresholds())

	got := make(map[string]Candidate)
	for _, c := range candidates {
		got[c.Word] = c
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 candidates, got %+v", candidates)
	}
	if c := got["the"]; !c.Reason.HighFrequency || !c.Reason.Dispersed {
		t.Errorf("'the' should meet both criteria, got %+v", c.Reason)
	}
	if c := got["with"]; c.Reason.HighFrequency || !c.Reason.Dispersed {
		t.Errorf("'with' should be dispersed only, got %+v", c.Reason)
	}
	if c := got["cpu"]; !c.Reason.HighFrequency || c.Reason.Dispersed {
		t.Errorf("'cpu' should be high-frequency only, got %+v", c.Reason)
	}
	if candidates[0].Word != "the" {
		t.Errorf("Highest score should come first, got %s", candidates[0].Word)
	}
}

func TestSuggestCandidatesLengthBoundaries(t *testing.T) {
	mgr := NewManager(nil)

	stats := []Stats{
		{Word: "four", RelFreq: 0.5},         // 4 runes: short enough
		{Word: "fives", RelFreq: 0.5},        // 5 runes: too long for frequency rule
		{Word: "sixsix", SentenceShare: 0.5}, // 6 runes: dispersed rule applies
		{Word: "sevense", SentenceShare: 0.5},
		{Word: "écrit", RelFreq: 0.5, SentenceShare: 0.5}, // 5 runes, more bytes
	}

	candidates := mgr.SuggestCandidates(stats, Thresholds{})

	got := make(map[string]bool)
	for _, c := range candidates {
		got[c.Word] = true
	}
	if !got["four"] || got["fives"] {
		t.Errorf("Frequency rule should cut at 4 runes, got %v", got)
	}
	if !got["sixsix"] || got["sevense"] {
		t.Errorf("Dispersion rule should cut at 6 runes, got %v", got)
	}
	if !got["écrit"] {
		t.Error("Lengths should be measured in runes")
	}
}

func TestSuggestCandidatesThresholdsAreStrict(t *testing.T) {
	mgr := NewManager(nil)

	stats := []Stats{
		{Word: "at", RelFreq: 0.01, SentenceShare: 0.2},
	}

	if c := mgr.SuggestCandidates(stats, DefaultThresholds()); len(c) != 0 {
		t.Errorf("Values equal to the thresholds should not qualify, got %+v", c)
	}
}

func TestSuggestCandidatesSkipsExisting(t *testing.T) {
	mgr := NewManager([]string{"the"})

	stats := []Stats{
		{Word: "the", RelFreq: 0.1, SentenceShare: 0.9},
	}

	if c := mgr.SuggestCandidates(stats, DefaultThresholds()); len(c) != 0 {
		t.Errorf("Existing stopwords should be skipped, got %+v", c)
	}
}

func TestThresholdsWithDefaults(t *testing.T) {
	th := Thresholds{ShortLen: 3}.withDefaults()

	if th.ShortLen != 3 {
		t.Errorf("Explicit value should be kept, got %d", th.ShortLen)
	}
	if th.FrequencyShare != 0.01 || th.SentenceShare != 0.2 || th.DispersedLen != 6 {
		t.Errorf("Zero fields should take defaults, got %+v", th)
	}
}
