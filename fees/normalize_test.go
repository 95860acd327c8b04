package fees

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
)

func findItem(items []Item, name, term string) (Item, bool) {
	for _, it := range items {
		if it.Name == name && it.TermName == term {
			return it, true
		}
	}
	return Item{}, false
}

func TestNormalizeTotality(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "nil"},
		{name: "empty", raw: []byte("")},
		{name: "json null", raw: []byte("null")},
		{name: "empty object", raw: []byte("{}")},
		{name: "not json", raw: []byte("##garbage##")},
		{name: "wrong top-level type", raw: []byte(`[1,2,3]`)},
		{name: "year with junk value", raw: []byte(`{"1st Year": 42}`)},
		{name: "item with junk amount", raw: []byte(`{"1st Year": [{"name":"Tuition Fee","amount":{"x":1},"term_name":"Term 1"}]}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Normalize(tt.raw, SplitFirstTerm)
			if s == nil {
				t.Fatal("Normalize() returned nil structure")
			}
		})
	}
}

func TestNormalizeCanonicalPassThrough(t *testing.T) {
	raw := []byte(`{"1st Year": [
		{"name":"Tuition Fee","amount":10000,"term_name":"Term 1"},
		{"name":"Tuition Fee","amount":8000,"term_name":"Term 2"},
		{"name":"Tuition Fee","amount":8000,"term_name":"Term 3"},
		{"name":"Yearly Concession","amount":0,"concession":2000,"term_name":"Total"}
	]}`)

	s := Normalize(raw, SplitFirstTerm)
	it, ok := findItem(s["1st Year"], "Tuition Fee", Term1)
	if !ok || it.Amount != 10000 {
		t.Fatalf("Term 1 tuition = %+v, ok=%v; want amount 10000", it, ok)
	}
	con, ok := findItem(s["1st Year"], ConcessionName, TermTotal)
	if !ok || con.Concession != 2000 {
		t.Fatalf("concession item = %+v, ok=%v; want concession 2000", con, ok)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "canonical", raw: []byte(`{"1st Year": [{"name":"Tuition Fee","amount":10000,"term_name":"Term 1"}]}`)},
		{name: "legacy flat", raw: []byte(`{"2nd Year": {"Tuition Fee": 30000, "Management Fee": 5000}}`)},
		{name: "legacy itemized", raw: []byte(`{"1st Year": [{"name":"Tuition Fee","amount":12000}]}`)},
		{name: "empty", raw: []byte(`{}`)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			once := Normalize(tt.raw, SplitFirstTerm)
			b, err := json.Marshal(once)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			twice := Normalize(b, SplitFirstTerm)
			if !reflect.DeepEqual(once, twice) {
				t.Errorf("normalize not idempotent:\nonce  = %+v\ntwice = %+v", once, twice)
			}
		})
	}
}

func TestNormalizeLegacyFlatSplit(t *testing.T) {
	raw := []byte(`{"1st Year": {"Tuition Fee": 30000}}`)

	t.Run("first term", func(t *testing.T) {
		s := Normalize(raw, SplitFirstTerm)
		want := []float64{30000, 0, 0}
		for i, term := range Terms {
			it, ok := findItem(s["1st Year"], "Tuition Fee", term)
			if !ok || it.Amount != want[i] {
				t.Errorf("%s = %+v, ok=%v; want amount %v", term, it, ok, want[i])
			}
		}
	})

	t.Run("even terms", func(t *testing.T) {
		s := Normalize([]byte(`{"1st Year": {"Tuition Fee": 10000}}`), SplitEvenTerms)
		want := []float64{3333.34, 3333.33, 3333.33}
		var sum float64
		for i, term := range Terms {
			it, _ := findItem(s["1st Year"], "Tuition Fee", term)
			if it.Amount != want[i] {
				t.Errorf("%s amount = %v, want %v", term, it.Amount, want[i])
			}
			sum += it.Amount
		}
		if math.Abs(sum-10000) > 1e-9 {
			t.Errorf("split sum = %v, want 10000", sum)
		}
	})
}

func TestNormalizeLegacyConcession(t *testing.T) {
	raw := []byte(`{"1st Year": {"Yearly Concession": 2500}}`)
	s := Normalize(raw, SplitFirstTerm)
	it, ok := findItem(s["1st Year"], ConcessionName, TermTotal)
	if !ok {
		t.Fatal("no concession item produced")
	}
	if it.Concession != 2500 || it.Amount != 0 {
		t.Errorf("concession item = %+v; want concession 2500, amount 0", it)
	}
}

func TestNormalizePadsBaseTerms(t *testing.T) {
	// Tuition appears only for Term 1 of 1st Year; both years must end up
	// with zero placeholders for the remaining tuition terms.
	raw := []byte(`{
		"1st Year": [{"name":"Tuition Fee","amount":10000,"term_name":"Term 1"}],
		"2nd Year": []
	}`)
	s := Normalize(raw, SplitFirstTerm)
	for _, year := range []string{"1st Year", "2nd Year"} {
		for _, term := range Terms {
			if _, ok := findItem(s[year], "Tuition Fee", term); !ok {
				t.Errorf("%s/%s: missing padded tuition item", year, term)
			}
		}
	}
	if it, _ := findItem(s["2nd Year"], "Tuition Fee", Term1); it.Amount != 0 {
		t.Errorf("padded item amount = %v, want 0", it.Amount)
	}
}

func TestNormalizeCoercesBadAmounts(t *testing.T) {
	raw := []byte(`{"1st Year": [
		{"name":"Tuition Fee","amount":"not-a-number","term_name":"Term 1"},
		{"name":"Management Fee","term_name":"Term 1"}
	]}`)
	s := Normalize(raw, SplitFirstTerm)
	for _, name := range []string{"Tuition Fee", "Management Fee"} {
		it, ok := findItem(s["1st Year"], name, Term1)
		if !ok || it.Amount != 0 {
			t.Errorf("%s = %+v, ok=%v; want amount coerced to 0", name, it, ok)
		}
	}
}
