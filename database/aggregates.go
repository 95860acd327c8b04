package database

import "time"

// Pre-aggregated report rows. These mirror the stored procedures the portal
// frontend consumes; controllers treat them as opaque result sets.

type MonthlyTotal struct {
	Month time.Time `json:"month"`
	Total float64   `json:"total"`
	Count int64     `json:"count"`
}

// MonthlyPayments sums the payment ledger per calendar month of the year.
func MonthlyPayments(year int) ([]MonthlyTotal, error) {
	var rows []MonthlyTotal
	err := DB.Raw(`
		SELECT date_trunc('month', created_at) AS month,
		       COALESCE(SUM(amount), 0)       AS total,
		       COUNT(*)                       AS count
		FROM payments
		WHERE EXTRACT(YEAR FROM created_at) = ?
		GROUP BY 1
		ORDER BY 1`, year).Scan(&rows).Error
	return rows, err
}

// MonthlyExpenses sums expenses per calendar month of the year.
func MonthlyExpenses(year int) ([]MonthlyTotal, error) {
	var rows []MonthlyTotal
	err := DB.Raw(`
		SELECT date_trunc('month', spent_at) AS month,
		       COALESCE(SUM(amount), 0)     AS total,
		       COUNT(*)                     AS count
		FROM expenses
		WHERE EXTRACT(YEAR FROM spent_at) = ?
		GROUP BY 1
		ORDER BY 1`, year).Scan(&rows).Error
	return rows, err
}

type InvoiceSummaryRow struct {
	StudyingYear string  `json:"studying_year"`
	TermName     string  `json:"term_name"`
	Status       string  `json:"status"`
	Count        int64   `json:"count"`
	Total        float64 `json:"total"`
}

// InvoiceSummary counts and sums invoices per (year, term, status).
func InvoiceSummary() ([]InvoiceSummaryRow, error) {
	var rows []InvoiceSummaryRow
	err := DB.Raw(`
		SELECT studying_year, term_name, status,
		       COUNT(*)                 AS count,
		       COALESCE(SUM(total), 0)  AS total
		FROM invoices
		GROUP BY studying_year, term_name, status
		ORDER BY studying_year, term_name, status`).Scan(&rows).Error
	return rows, err
}

type OutstandingStudentRow struct {
	StudentID       uint    `json:"student_id"`
	AdmissionNumber string  `json:"admission_number"`
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	StudyingYear    string  `json:"studying_year"`
	Outstanding     float64 `json:"outstanding"`
}

// OutstandingByTerm lists students holding pending invoices for a term,
// with the summed outstanding amount.
func OutstandingByTerm(term string) ([]OutstandingStudentRow, error) {
	var rows []OutstandingStudentRow
	err := DB.Raw(`
		SELECT s.id AS student_id, s.admission_number, s.first_name,
		       s.last_name, s.studying_year,
		       COALESCE(SUM(i.total), 0) AS outstanding
		FROM invoices i
		JOIN students s ON s.id = i.student_id
		WHERE i.term_name = ? AND i.status = 'pending'
		GROUP BY s.id, s.admission_number, s.first_name, s.last_name, s.studying_year
		ORDER BY s.admission_number`, term).Scan(&rows).Error
	return rows, err
}
