package entities

import (
	"fmt"
	"slices"
	"strings"
	"testing"
)

func TestExtractKindsInOrder(t *testing.T) {
	text := "Visit Apple Store on 2024-03-15 and pay $1,299.99 or 15% less. " +
		"mail sales@example.com or see https://example.com/deals."

	got := Extract(text)
	want := []Entity{
		{Text: "Visit Apple Store", Kind: KindName},
		{Text: "2024-03-15", Kind: KindDate},
		{Text: "$1,299.99", Kind: KindNumber},
		{Text: "15%", Kind: KindNumber},
		{Text: "sales@example.com", Kind: KindEmail},
		{Text: "https://example.com/deals", Kind: KindURL},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Extract = %+v\nwant %+v", got, want)
	}
}

func TestExtractMonthNameDates(t *testing.T) {
	texts := Texts(Extract("Released March 5th, 2023 and updated on 12 Jan 2024"))

	for _, want := range []string{"March 5th, 2023", "12 Jan 2024"} {
		if !slices.Contains(texts, want) {
			t.Errorf("missing date %q in %v", want, texts)
		}
	}
	// date spans win over names
	if slices.Contains(texts, "Released March") {
		t.Errorf("name overlapping a date was kept: %v", texts)
	}
}

func TestExtractDeduplicatesAndLimits(t *testing.T) {
	got := Extract("Dell and DELL and Dell again")
	if len(got) != 1 || got[0].Text != "Dell" {
		t.Fatalf("expected a single Dell, got %+v", got)
	}

	var b strings.Builder
	for i := 1; i <= 15; i++ {
		fmt.Fprintf(&b, "item %d costs more; ", i*100)
	}
	if n := len(Extract(b.String())); n != DefaultLimit {
		t.Errorf("Extract returned %d entities, want %d", n, DefaultLimit)
	}
	if n := len(ExtractN(b.String(), 0)); n != 15 {
		t.Errorf("ExtractN(0) returned %d entities, want 15", n)
	}
}

func TestExtractEmpty(t *testing.T) {
	if got := Extract(""); len(got) != 0 {
		t.Errorf("Extract(\"\") = %v, want empty", got)
	}
	if got := Extract("all lowercase words only"); len(got) != 0 {
		t.Errorf("Extract(lowercase) = %v, want empty", got)
	}
}
