package fees

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1st Year", "1st_year"},
		{"Term 1", "term_1"},
		{"Tuition Fee", "tuition_fee"},
		{"  JVD Fee ", "jvd_fee"},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildFromRow(t *testing.T) {
	row := map[string]string{
		"1st_year_term_1_tuition_fee":    "12000",
		"1st_year_term_2_tuition_fee":    "8000",
		"1st_year_term_1_management_fee": "invalid",
	}
	s := BuildFromRow(row, []string{"1st Year"}, false)

	it, _ := findItem(s["1st Year"], "Tuition Fee", Term1)
	if it.Amount != 12000 {
		t.Errorf("tuition term 1 = %v, want 12000", it.Amount)
	}
	it, _ = findItem(s["1st Year"], "Tuition Fee", Term3)
	if it.Amount != 0 {
		t.Errorf("missing column = %v, want 0", it.Amount)
	}
	it, _ = findItem(s["1st Year"], "Management Fee", Term1)
	if it.Amount != 0 {
		t.Errorf("invalid column = %v, want 0", it.Amount)
	}
}

func TestBuildFromRowJVDOverride(t *testing.T) {
	// The override must win over whatever the sheet says for 1st Year.
	row := map[string]string{
		"1st_year_term_1_tuition_fee": "9999",
		"1st_year_term_2_tuition_fee": "9999",
		"1st_year_term_3_tuition_fee": "9999",
		"1st_year_term_3_jvd_fee":     "1",
		"2nd_year_term_1_tuition_fee": "7000",
	}
	s := BuildFromRow(row, []string{"1st Year", "2nd Year"}, true)

	checks := []struct {
		year, feeType, term string
		want                float64
	}{
		{"1st Year", "Tuition Fee", Term1, 15000},
		{"1st Year", "Tuition Fee", Term2, 15000},
		{"1st Year", "Tuition Fee", Term3, 0},
		{"1st Year", "JVD Fee", Term3, 15000},
		{"2nd Year", "Tuition Fee", Term1, 7000}, // override is 1st Year only
	}
	for _, c := range checks {
		it, ok := findItem(s[c.year], c.feeType, c.term)
		if !ok || it.Amount != c.want {
			t.Errorf("%s/%s/%s = %v (ok=%v), want %v", c.year, c.feeType, c.term, it.Amount, ok, c.want)
		}
	}
}

func TestIsJVD(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"JVD", true},
		{"jvd scholarship", true},
		{"Regular - JVD quota", true},
		{"Regular", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsJVD(tt.in); got != tt.want {
			t.Errorf("IsJVD(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDefaultStructure(t *testing.T) {
	s := Default([]string{"1st Year"}, "JVD")
	it, ok := findItem(s["1st Year"], "Tuition Fee", Term1)
	if !ok || it.Amount != 15000 {
		t.Errorf("JVD default tuition term 1 = %v (ok=%v), want 15000", it.Amount, ok)
	}

	s = Default([]string{"1st Year"}, "Regular")
	it, _ = findItem(s["1st Year"], "Tuition Fee", Term1)
	if it.Amount != 0 {
		t.Errorf("regular default tuition = %v, want 0", it.Amount)
	}
}
