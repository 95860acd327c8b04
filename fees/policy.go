package fees

import "strings"

// jvdAmount is the fixed tuition/JVD amount the scholarship scheme mandates
// for first-year students, regardless of what an admin keys in.
const jvdAmount = 15000

const firstYear = "1st Year"

// IsJVD reports whether a student-type label denotes the JVD scholarship
// category. The label is free text, so this is a substring check, not an
// enum comparison.
func IsJVD(studentType string) bool {
	return strings.Contains(strings.ToUpper(studentType), "JVD")
}

// Override returns the forced amount for a (year, term, feeType) cell of a
// JVD student, and whether an override applies. It is the single source of
// truth for the JVD rule, shared by manual creation defaults and the bulk
// importer: first-year Tuition Fee is fixed for Term 1 and Term 2 and zeroed
// for Term 3, and the Term 3 JVD Fee is fixed instead.
func Override(isJVD bool, year, term, feeType string) (float64, bool) {
	if !isJVD || year != firstYear {
		return 0, false
	}
	switch feeType {
	case "Tuition Fee":
		switch term {
		case Term1, Term2:
			return jvdAmount, true
		case Term3:
			return 0, true
		}
	case "JVD Fee":
		if term == Term3 {
			return jvdAmount, true
		}
	}
	return 0, false
}
