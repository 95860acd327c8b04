package fees

import "github.com/kovvurisuryavenkatareddy/school-management-sub000/utils"

// Cell is one derived reconciliation bucket. Never persisted.
type Cell struct {
	Total      float64 `json:"total"`
	Paid       float64 `json:"paid"`
	Concession float64 `json:"concession"`
	Balance    float64 `json:"balance"`
}

// Table is the full reconciliation: year → feeType → term → cell.
type Table map[string]map[string]map[string]Cell

// Reconcile merges a normalized structure with the payment ledger. Duplicate
// structure cells are summed. Payments whose tag is not a term-fee tag, or
// that address a cell absent from the structure, are skipped silently —
// they stay visible in the raw payment history only.
func Reconcile(s Structure, payments []Payment) Table {
	tbl := Table{}

	cell := func(year, feeType, term string) *Cell {
		byType, ok := tbl[year]
		if !ok {
			byType = map[string]map[string]Cell{}
			tbl[year] = byType
		}
		byTerm, ok := byType[feeType]
		if !ok {
			byTerm = map[string]Cell{}
			byType[feeType] = byTerm
		}
		c := byTerm[term]
		return &c
	}

	for year, items := range s {
		for _, it := range items {
			c := cell(year, it.Name, it.TermName)
			c.Total += it.Amount
			if it.Name == ConcessionName {
				c.Concession += it.Concession
			}
			tbl[year][it.Name][it.TermName] = *c
		}
	}

	for _, p := range payments {
		t := ParseTarget(p.FeeType)
		if t.Kind != TargetTermFee {
			continue
		}
		byType, ok := tbl[t.Year]
		if !ok {
			continue
		}
		byTerm, ok := byType[t.FeeType]
		if !ok {
			continue
		}
		c, ok := byTerm[t.Term]
		if !ok {
			// Payment against a cell the structure never defined: dropped
			// from the table, tracked in raw history only.
			continue
		}
		c.Paid += p.Amount
		byTerm[t.Term] = c
	}

	for _, byType := range tbl {
		for _, byTerm := range byType {
			for term, c := range byTerm {
				c.Balance = clampBalance(c.Total, c.Concession, c.Paid)
				byTerm[term] = c
			}
		}
	}
	return tbl
}

// YearSummary collapses a year of the table into a single cell. Concession
// is a whole-year deduction, so it reduces the yearly balance even though
// per-term cells keep their totals undiminished.
func YearSummary(tbl Table, year string) Cell {
	var sum Cell
	for _, byTerm := range tbl[year] {
		for _, c := range byTerm {
			sum.Total += c.Total
			sum.Paid += c.Paid
			sum.Concession += c.Concession
		}
	}
	sum.Balance = clampBalance(sum.Total, sum.Concession, sum.Paid)
	return sum
}

// clampBalance clamps overpayment to zero; an overpaid cell reads as settled.
func clampBalance(total, concession, paid float64) float64 {
	b := utils.Round2(total - concession - paid)
	if b < 0 {
		return 0
	}
	return b
}
