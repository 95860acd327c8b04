package fees

import "strings"

// Fixed term labels used throughout fee documents and payment tags.
const (
	Term1     = "Term 1"
	Term2     = "Term 2"
	Term3     = "Term 3"
	TermTotal = "Total"
)

// ConcessionName is the synthetic item carrying a year-level concession.
const ConcessionName = "Yearly Concession"

// Terms are the three collectible terms, in order.
var Terms = []string{Term1, Term2, Term3}

// BaseFeeTypes are the fee heads a structure is expected to carry.
var BaseFeeTypes = []string{"Tuition Fee", "Management Fee", "JVD Fee"}

// StudyingYears are the year labels the portal manages, in order.
var StudyingYears = []string{"1st Year", "2nd Year", "3rd Year", "4th Year"}

// Item is one line of fee obligation inside a student's fee document.
type Item struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name"`
	Amount     float64 `json:"amount"`
	Concession float64 `json:"concession,omitempty"`
	TermName   string  `json:"term_name"`
}

// Structure maps a studying-year label ("1st Year") to its fee items.
type Structure map[string][]Item

// Payment is the slice of a ledger row the aggregator cares about.
type Payment struct {
	FeeType string
	Amount  float64
}

// TargetKind discriminates parsed payment tags.
type TargetKind int

const (
	// TargetTermFee is a tag of the form "<Year> - <Term> - <FeeType>".
	TargetTermFee TargetKind = iota
	// TargetOther covers invoice labels, bulk imports and free-text tags;
	// these never reconcile against the fee structure.
	TargetOther
)

// Target is a payment tag parsed once at ingestion.
type Target struct {
	Kind    TargetKind
	Year    string
	Term    string
	FeeType string
	Label   string // raw tag, set for TargetOther
}

const tagSep = " - "

// ParseTarget splits a fee_type tag on " - ". Tags with fewer than three
// segments do not address a structure cell and come back as TargetOther;
// parsing never fails.
func ParseTarget(tag string) Target {
	parts := strings.Split(tag, tagSep)
	if len(parts) < 3 {
		return Target{Kind: TargetOther, Label: tag}
	}
	return Target{
		Kind:    TargetTermFee,
		Year:    parts[0],
		Term:    parts[1],
		FeeType: strings.Join(parts[2:], tagSep),
	}
}

// Tag renders the canonical tag for a term-fee target.
func Tag(year, term, feeType string) string {
	return year + tagSep + term + tagSep + feeType
}
