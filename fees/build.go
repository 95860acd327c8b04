package fees

import (
	"strconv"
	"strings"
)

// Slug lowercases a label and replaces spaces with underscores, matching the
// column naming the bulk-import template uses.
func Slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// ColumnKey is the spreadsheet column addressing one fee cell,
// e.g. "1st_year_term_1_tuition_fee".
func ColumnKey(year, term, feeType string) string {
	return Slug(year) + "_" + Slug(term) + "_" + Slug(feeType)
}

// BuildFromRow is the inverse transform: one spreadsheet row to a canonical
// fee structure. Missing or unparseable cells default to zero. The JVD
// override is applied last and wins over whatever the row says.
func BuildFromRow(row map[string]string, years []string, isJVD bool) Structure {
	s := Structure{}
	for _, year := range years {
		items := make([]Item, 0, len(Terms)*len(BaseFeeTypes))
		for _, feeType := range BaseFeeTypes {
			for _, term := range Terms {
				amount := parseAmount(row[ColumnKey(year, term, feeType)])
				if forced, ok := Override(isJVD, year, term, feeType); ok {
					amount = forced
				}
				items = append(items, Item{Name: feeType, Amount: amount, TermName: term})
			}
		}
		s[year] = items
	}
	return s
}

// Default builds the fee structure for a manually created student: zeroed
// cells for every base fee type, with the JVD override applied. Admins fill
// amounts in afterwards.
func Default(years []string, studentType string) Structure {
	return BuildFromRow(nil, years, IsJVD(studentType))
}

func parseAmount(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
