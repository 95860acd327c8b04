package controllers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/kovvurisuryavenkatareddy/school-management-sub000/database"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/fees"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/models"

	"github.com/gofiber/fiber/v2"
)

type importRowError struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

// ImportStudents bulk-creates students from an uploaded CSV. Each row is an
// independent insert; a bad row is recorded and the import moves on, so a
// partial failure leaves a partially imported batch surfaced as counts.
//
// Student columns: admission_number, first_name, last_name, gender,
// student_type, studying_year, section, parent_name, parent_phone, email,
// address. Fee columns follow the <year>_<term>_<feetype> slug convention
// (see fees.ColumnKey); missing fee columns default to zero.
func ImportStudents(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "missing file upload"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "could not open upload", "error": err.Error()})
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows are handled per row

	header, err := reader.Read()
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "could not read CSV header", "error": err.Error()})
	}
	for i := range header {
		header[i] = fees.Slug(header[i])
	}

	created, failed := 0, 0
	var rowErrors []importRowError
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			failed++
			rowErrors = append(rowErrors, importRowError{Line: line, Error: "unreadable row"})
			continue
		}

		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}

		if row["admission_number"] == "" || row["first_name"] == "" || row["studying_year"] == "" {
			failed++
			rowErrors = append(rowErrors, importRowError{
				Line:  line,
				Error: "admission_number, first_name and studying_year are required",
			})
			continue
		}

		structure := fees.BuildFromRow(row, fees.StudyingYears, fees.IsJVD(row["student_type"]))
		student := models.Student{
			AdmissionNumber: row["admission_number"],
			RollNumber:      row["roll_number"],
			FirstName:       row["first_name"],
			LastName:        row["last_name"],
			Gender:          row["gender"],
			StudentType:     row["student_type"],
			StudyingYear:    row["studying_year"],
			Section:         row["section"],
			Status:          models.StudentActive,
			ParentName:      row["parent_name"],
			ParentPhone:     row["parent_phone"],
			Email:           row["email"],
			Address:         row["address"],
			FeeStructure:    structureJSON(structure),
		}

		if err := database.DB.Create(&student).Error; err != nil {
			failed++
			rowErrors = append(rowErrors, importRowError{Line: line, Error: err.Error()})
			continue
		}
		created++
	}

	logActivity(c, "student.import", "student", "", fiber.Map{
		"file":    fileHeader.Filename,
		"created": created,
		"failed":  failed,
	})
	return c.JSON(fiber.Map{
		"created": created,
		"failed":  failed,
		"errors":  rowErrors,
		"message": fmt.Sprintf("%d created, %d failed", created, failed),
	})
}
