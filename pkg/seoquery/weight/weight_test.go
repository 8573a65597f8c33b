package weight

import (
	"math"
	"slices"
	"sort"
	"strings"
	"testing"
)

const eps = 1e-12

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestScore(t *testing.T) {
	if got := Score(1, 10); !near(got, 0.1*math.Log(10)) {
		t.Errorf("Score(1, 10) = %v, want %v", got, 0.1*math.Log(10))
	}
	// a word that is the whole text carries no weight
	if got := Score(10, 10); got != 0 {
		t.Errorf("Score(10, 10) = %v, want 0", got)
	}
	if got := Score(0, 10); got != 0 {
		t.Errorf("Score(0, 10) = %v, want 0", got)
	}
	if got := Score(3, 0); got != 0 {
		t.Errorf("Score(3, 0) = %v, want 0", got)
	}
}

func TestWeighTieBreakAndRoles(t *testing.T) {
	tied := Weigh([]string{"gamma", "alpha", "beta"})
	if len(tied) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tied))
	}
	forms := []string{tied[0].Form, tied[1].Form, tied[2].Form}
	if !slices.Equal(forms, []string{"alpha", "beta", "gamma"}) {
		t.Errorf("tie order = %v, want alphabetical", forms)
	}

	tokens := Weigh([]string{"laptop", "gaming", "laptop", "review"})
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d", len(tokens))
	}
	idx := NewIndex(tokens)

	laptop := idx["laptop"]
	if laptop == nil {
		t.Fatal("missing token laptop")
	}
	if laptop.Freq != 2 {
		t.Errorf("laptop freq = %d, want 2", laptop.Freq)
	}
	if !slices.Equal(laptop.Positions, []int{0, 2}) {
		t.Errorf("laptop positions = %v, want [0 2]", laptop.Positions)
	}
	if !near(laptop.Diversity, 1.0) {
		t.Errorf("laptop diversity = %v, want 1", laptop.Diversity)
	}
	if !near(laptop.PositionalEntropy, 1.0) {
		t.Errorf("laptop positional entropy = %v, want 1", laptop.PositionalEntropy)
	}
	if laptop.Role != RoleModifier {
		t.Errorf("laptop role = %s, want %s", laptop.Role, RoleModifier)
	}

	gaming := idx["gaming"]
	if gaming == nil {
		t.Fatal("missing token gaming")
	}
	// single occurrence with unique context
	if gaming.Role != RoleFunction {
		t.Errorf("gaming role = %s, want %s", gaming.Role, RoleFunction)
	}
}

func TestWeighRepeatedContexts(t *testing.T) {
	words := strings.Fields(strings.Repeat("xenon yak zebra walrus viper ", 4))
	idx := NewIndex(Weigh(words))

	zebra := idx["zebra"]
	if zebra == nil {
		t.Fatal("missing token zebra")
	}
	if !slices.Equal(zebra.Positions, []int{2, 7, 12, 17}) {
		t.Errorf("zebra positions = %v", zebra.Positions)
	}
	if !near(zebra.Diversity, 0.25) {
		t.Errorf("zebra diversity = %v, want 0.25", zebra.Diversity)
	}
	if !near(zebra.PositionalEntropy, 2.0) {
		t.Errorf("zebra positional entropy = %v, want 2", zebra.PositionalEntropy)
	}
	if !near(zebra.Weight, 0.2*math.Log(5)) {
		t.Errorf("zebra weight = %v, want %v", zebra.Weight, 0.2*math.Log(5))
	}
	if zebra.Role != RoleEntity {
		t.Errorf("zebra role = %s, want %s", zebra.Role, RoleEntity)
	}

	xenon := idx["xenon"]
	if xenon == nil {
		t.Fatal("missing token xenon")
	}
	if !near(xenon.Diversity, 0.5) {
		t.Errorf("xenon diversity = %v, want 0.5", xenon.Diversity)
	}
	if xenon.Role != RoleContent {
		t.Errorf("xenon role = %s, want %s", xenon.Role, RoleContent)
	}
}

func TestWeighSortedNonNegative(t *testing.T) {
	text := "budget laptops students budget laptops gaming notebooks battery life laptops review budget"
	tokens := Weigh(strings.Fields(text))
	if len(tokens) == 0 {
		t.Fatal("expected tokens")
	}

	for _, tok := range tokens {
		if tok.Weight < 0 || tok.PositionalEntropy < 0 {
			t.Errorf("%s: negative weight or entropy: %+v", tok.Form, tok)
		}
		if tok.Diversity < 0 || tok.Diversity > 1 {
			t.Errorf("%s: diversity %v outside [0,1]", tok.Form, tok.Diversity)
		}
	}
	if !sort.SliceIsSorted(tokens, func(i, j int) bool {
		return tokens[i].Weight > tokens[j].Weight
	}) {
		t.Error("tokens not sorted by weight")
	}
}

func TestWeighEmpty(t *testing.T) {
	if got := Weigh(nil); len(got) != 0 {
		t.Errorf("Weigh(nil) = %v, want empty", got)
	}
	if got := MeanWeight(nil); got != 0 {
		t.Errorf("MeanWeight(nil) = %v, want 0", got)
	}
}

func TestAssignRole(t *testing.T) {
	cases := []struct {
		name      string
		weight    float64
		freq      int
		diversity float64
		want      Role
	}{
		{"entity", 0.02, 3, 0.3, RoleEntity},
		{"content beats modifier", 0.02, 6, 0.9, RoleContent},
		{"modifier", 0.001, 3, 0.8, RoleModifier},
		{"modifier needs repeats", 0.001, 1, 0.8, RoleFunction},
		{"function", 0.001, 12, 0.1, RoleFunction},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AssignRole(tc.weight, tc.freq, tc.diversity); got != tc.want {
				t.Errorf("AssignRole(%v, %d, %v) = %s, want %s", tc.weight, tc.freq, tc.diversity, got, tc.want)
			}
		})
	}
}

func TestMeanWeight(t *testing.T) {
	tokens := []Token{{Weight: 0.2}, {Weight: 0.4}}
	if got := MeanWeight(tokens); !near(got, 0.3) {
		t.Errorf("MeanWeight = %v, want 0.3", got)
	}
}
