package pmi

import "testing"

func TestCounterBasic(t *testing.T) {
	counter := NewCounter()

	counter.AddSentence([]string{"budget", "laptops", "compare"})

	if counter.Sentences() != 1 {
		t.Errorf("Expected 1 sentence, got %d", counter.Sentences())
	}

	if counter.WordCount("laptops") != 1 {
		t.Error("Word 'laptops' should have count 1")
	}
}

func TestCounterCooccurrence(t *testing.T) {
	counter := NewCounter()

	counter.AddSentence([]string{"cheap", "laptops"})
	counter.AddSentence([]string{"laptops", "cheap"})

	if counter.WordCount("cheap") != 2 {
		t.Error("cheap should appear in 2 sentences")
	}

	if count := counter.PairCount("cheap", "laptops"); count != 2 {
		t.Errorf("Pair should co-occur 2 times, got %d", count)
	}
}

func TestCounterCanonicalOrdering(t *testing.T) {
	counter := NewCounter()

	counter.AddSentence([]string{"zebra", "apple"})

	count1 := counter.PairCount("zebra", "apple")
	count2 := counter.PairCount("apple", "zebra")

	if count1 != count2 {
		t.Error("Pair count should be symmetric")
	}

	if count1 != 1 {
		t.Errorf("Expected count 1, got %d", count1)
	}
}

func TestCounterMultipleSentences(t *testing.T) {
	counter := NewCounter()

	sentences := [][]string{
		{"a", "b"},
		{"a", "c"},
		{"b", "c"},
		{"a", "b", "c"},
	}

	for _, s := range sentences {
		counter.AddSentence(s)
	}

	if counter.Sentences() != 4 {
		t.Errorf("Expected 4 sentences, got %d", counter.Sentences())
	}

	if counter.WordCount("a") != 3 {
		t.Errorf("Word 'a' should appear in 3 sentences, got %d", counter.WordCount("a"))
	}

	for _, p := range [][2]string{{"a", "b"}, {"a", "c"}, {"b", "c"}} {
		if got := counter.PairCount(p[0], p[1]); got != 2 {
			t.Errorf("Pair %v should co-occur 2 times, got %d", p, got)
		}
	}
}

func TestCounterDeduplicatesWithinSentence(t *testing.T) {
	counter := NewCounter()

	counter.AddSentence([]string{"laptops", "laptops", "price", "laptops"})

	if counter.WordCount("laptops") != 1 {
		t.Errorf("Repeated word should count once per sentence, got %d", counter.WordCount("laptops"))
	}
	if counter.PairCount("laptops", "laptops") != 0 {
		t.Error("Self pairs should not be counted")
	}
	if counter.UniqueWords() != 2 {
		t.Errorf("Expected 2 unique words, got %d", counter.UniqueWords())
	}
}
