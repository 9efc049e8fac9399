package competitor

import (
	"math"
	"testing"
)

func fptr(v float64) *float64 { return &v }

func TestParsePricePrefixSymbol(t *testing.T) {
	cases := map[string]float64{
		"only $29.99 today":        29.99,
		"preço R$ 47,00 à vista":   47.00,
		"€19 for the full course":  19,
		"£ 12.50 instant download": 12.50,
	}
	for text, want := range cases {
		got := ParsePrice(text)
		if got == nil {
			t.Fatalf("ParsePrice(%q) = nil, want %v", text, want)
		}
		if *got != want {
			t.Fatalf("ParsePrice(%q) = %v, want %v", text, *got, want)
		}
	}
}

func TestParsePriceSuffixSymbol(t *testing.T) {
	got := ParsePrice("der komplette Kurs für 39,99 €")
	if got == nil || *got != 39.99 {
		t.Fatalf("expected 39.99, got %v", got)
	}
}

func TestParsePriceCommaDecimal(t *testing.T) {
	got := ParsePrice("R$27,90")
	if got == nil || *got != 27.90 {
		t.Fatalf("expected 27.90, got %v", got)
	}
}

func TestParsePriceNoMatch(t *testing.T) {
	for _, text := range []string{"", "free guide", "call 555-1234", "chapter 12"} {
		if got := ParsePrice(text); got != nil {
			t.Fatalf("ParsePrice(%q) = %v, want nil", text, *got)
		}
	}
}

func TestParsePriceFirstTokenWins(t *testing.T) {
	got := ParsePrice("was $50.00 now $25.00")
	if got == nil || *got != 50.00 {
		t.Fatalf("expected first token 50.00, got %v", got)
	}
}

func TestStatsEmptyAndUnpriced(t *testing.T) {
	avg, rng := Stats(nil)
	if avg != 0 || rng.Min != 0 || rng.Max != 0 {
		t.Fatalf("empty input: avg=%v rng=%+v, want zeros", avg, rng)
	}

	avg, rng = Stats([]Record{{Title: "a"}, {Title: "b"}})
	if avg != 0 || rng.Min != 0 || rng.Max != 0 {
		t.Fatalf("unpriced records: avg=%v rng=%+v, want zeros", avg, rng)
	}
}

func TestStatsIgnoresUnpricedRecords(t *testing.T) {
	records := []Record{
		{Title: "a", Price: fptr(10)},
		{Title: "b"},
		{Title: "c", Price: fptr(30)},
	}
	avg, rng := Stats(records)
	if avg != 20 {
		t.Fatalf("avg = %v, want 20", avg)
	}
	if rng.Min != 10 || rng.Max != 30 {
		t.Fatalf("range = %+v, want {10 30}", rng)
	}
}

func TestStatsSingleRecord(t *testing.T) {
	avg, rng := Stats([]Record{{Price: fptr(42)}})
	if avg != 42 || rng.Min != 42 || rng.Max != 42 {
		t.Fatalf("avg=%v rng=%+v, want all 42", avg, rng)
	}
	if math.IsInf(rng.Min, 1) {
		t.Fatal("sentinel min leaked into result")
	}
}
