package fees

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/kovvurisuryavenkatareddy/school-management-sub000/utils"
)

// SplitPolicy decides how a legacy flat per-year amount is spread over the
// three terms. The intended business split is not settled, so it stays a
// parameter rather than a constant.
type SplitPolicy int

const (
	// SplitFirstTerm books the whole amount under Term 1.
	SplitFirstTerm SplitPolicy = iota
	// SplitEvenTerms books even thirds, rounding remainder into Term 1.
	SplitEvenTerms
)

// Normalize converts whatever is stored in a student's fee column into the
// canonical per-term itemized Structure. It is total: nil, empty, legacy and
// malformed inputs all come back as a (possibly empty) Structure, never an
// error. The input is never mutated.
func Normalize(raw []byte, pol SplitPolicy) Structure {
	out := Structure{}
	if len(raw) == 0 {
		return out
	}

	var years map[string]json.RawMessage
	if err := json.Unmarshal(raw, &years); err != nil {
		return out
	}

	for year, val := range years {
		out[year] = normalizeYear(val, pol)
	}
	padBaseTerms(out)
	return out
}

func normalizeYear(val json.RawMessage, pol SplitPolicy) []Item {
	// Itemized array, canonical or legacy (items without term_name).
	var arr []json.RawMessage
	if err := json.Unmarshal(val, &arr); err == nil {
		return normalizeItems(val, pol)
	}

	// Legacy flat object {feeTypeName: amount}.
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(val, &flat); err == nil {
		names := make([]string, 0, len(flat))
		for name := range flat {
			names = append(names, name)
		}
		sort.Strings(names)

		items := make([]Item, 0, len(flat))
		for _, name := range names {
			items = append(items, expand(name, rawNum(flat[name]), pol)...)
		}
		return items
	}

	return nil
}

func normalizeItems(val json.RawMessage, pol SplitPolicy) []Item {
	var rawItems []struct {
		ID         string          `json:"id"`
		Name       string          `json:"name"`
		Amount     json.RawMessage `json:"amount"`
		Concession json.RawMessage `json:"concession"`
		TermName   string          `json:"term_name"`
	}
	if err := json.Unmarshal(val, &rawItems); err != nil {
		return nil
	}

	var items []Item
	for _, ri := range rawItems {
		amount := rawNum(ri.Amount)
		concession := rawNum(ri.Concession)
		if ri.TermName == "" {
			// Legacy itemized entry with no term split.
			items = append(items, expand(ri.Name, amount, pol)...)
			continue
		}
		items = append(items, Item{
			ID:         ri.ID,
			Name:       ri.Name,
			Amount:     amount,
			Concession: concession,
			TermName:   ri.TermName,
		})
	}
	return items
}

// expand turns a flat (feeType, amount) pair into term-tagged items.
func expand(name string, amount float64, pol SplitPolicy) []Item {
	if name == ConcessionName {
		return []Item{{Name: ConcessionName, Concession: amount, TermName: TermTotal}}
	}

	amounts := [3]float64{}
	switch pol {
	case SplitEvenTerms:
		third := utils.Round2(amount / 3)
		amounts = [3]float64{utils.Round2(amount - 2*third), third, third}
	default: // SplitFirstTerm
		amounts[0] = amount
	}

	items := make([]Item, 0, len(Terms))
	for i, term := range Terms {
		items = append(items, Item{Name: name, Amount: amounts[i], TermName: term})
	}
	return items
}

// padBaseTerms guarantees every year holds an entry for each base fee type
// seen anywhere in the input, for all three terms, so summary rendering never
// has to special-case a missing cell.
func padBaseTerms(s Structure) {
	seen := map[string]bool{}
	for _, items := range s {
		for _, it := range items {
			seen[it.Name] = true
		}
	}

	var pad []string
	for _, base := range BaseFeeTypes {
		if seen[base] {
			pad = append(pad, base)
		}
	}
	if len(pad) == 0 {
		return
	}

	for year, items := range s {
		have := map[string]bool{}
		for _, it := range items {
			have[it.Name+"\x00"+it.TermName] = true
		}
		for _, name := range pad {
			for _, term := range Terms {
				if !have[name+"\x00"+term] {
					items = append(items, Item{Name: name, TermName: term})
				}
			}
		}
		s[year] = items
	}
}

func rawNum(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		// Tolerate quoted numbers; anything else coerces to zero.
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		n = json.Number(s)
	}
	return num(n)
}

func num(n json.Number) float64 {
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return 0
	}
	return f
}
