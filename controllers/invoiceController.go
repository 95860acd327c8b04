package controllers

import (
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/database"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/fees"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/middlewares"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/models"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/utils"

	"github.com/gofiber/fiber/v2"
)

type GenerateInvoicesInput struct {
	StudyingYear string `json:"studying_year" validate:"required"`
	TermName     string `json:"term_name" validate:"required,term"`
}

// GenerateInvoices creates one invoice per active student of the year for
// the given term, from the student's current fee structure. Each student's
// invoice (header + items) commits in a single transaction; across students
// the batch stays sequential and non-atomic, surfaced as aggregate counts.
func GenerateInvoices(c *fiber.Ctx) error {
	var input GenerateInvoicesInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	var students []models.Student
	err := database.DB.
		Where("studying_year = ? AND status = ?", input.StudyingYear, models.StudentActive).
		Find(&students).Error
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not load students", "error": err.Error()})
	}

	generated, skipped, failed := 0, 0, 0
	for i := range students {
		student := &students[i]

		// One invoice per (student, year, term).
		var existing int64
		database.DB.Model(&models.Invoice{}).
			Where("student_id = ? AND studying_year = ? AND term_name = ?",
				student.ID, input.StudyingYear, input.TermName).
			Count(&existing)
		if existing > 0 {
			skipped++
			continue
		}

		structure := fees.Normalize(student.FeeStructure, fees.SplitFirstTerm)
		var items []models.InvoiceItem
		var total float64
		for _, it := range structure[input.StudyingYear] {
			if it.TermName != input.TermName || it.Amount <= 0 {
				continue
			}
			items = append(items, models.InvoiceItem{FeeType: it.Name, Amount: it.Amount})
			total += it.Amount
		}
		if len(items) == 0 {
			skipped++
			continue
		}

		invoice := models.Invoice{
			InvoiceNumber: utils.InvoiceNumber(),
			StudentID:     student.ID,
			StudyingYear:  input.StudyingYear,
			TermName:      input.TermName,
			Items:         items,
			Total:         utils.Round2(total),
			Status:        models.InvoicePending,
		}

		tx := database.DB.Begin()
		if err := tx.Create(&invoice).Error; err != nil {
			tx.Rollback()
			failed++
			continue
		}
		tx.Commit()
		generated++
	}

	logActivity(c, "invoice.generate", "invoice", "", fiber.Map{
		"studying_year": input.StudyingYear,
		"term_name":     input.TermName,
		"generated":     generated,
		"skipped":       skipped,
		"failed":        failed,
	})
	return c.JSON(fiber.Map{
		"generated": generated,
		"skipped":   skipped,
		"failed":    failed,
		"message":   "success",
	})
}

func GetInvoices(c *fiber.Ctx) error {
	page := utils.ParseIntDefault(c.Query("page"), 1)
	limit := utils.ParseIntDefault(c.Query("limit"), 25)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 25
	}

	q := database.DB.Model(&models.Invoice{})
	if year := c.Query("studying_year"); year != "" {
		q = q.Where("studying_year = ?", year)
	}
	if term := c.Query("term_name"); term != "" {
		q = q.Where("term_name = ?", term)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	q.Count(&total)

	var invoices []models.Invoice
	if err := q.Preload("Items").Preload("Student").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&invoices).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not load invoices", "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"invoices": invoices,
		"total":    total,
		"page":     page,
		"message":  "success",
	})
}

func UpdateInvoiceStatus(c *fiber.Ctx) error {
	var data map[string]string
	if err := c.BodyParser(&data); err != nil {
		return err
	}
	status := data["status"]
	if status != models.InvoicePending && status != models.InvoicePaid {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "invalid status"})
	}

	var invoice models.Invoice
	if err := database.DB.First(&invoice, "id = ?", c.Params("id")).Error; err != nil {
		return err
	}

	if err := database.DB.Model(&invoice).Update("status", status).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not update invoice",
			"error":   err.Error(),
		})
	}

	logActivity(c, "invoice.status", "invoice", c.Params("id"), fiber.Map{"status": status})
	return c.JSON(invoice)
}

func GetInvoiceSummary(c *fiber.Ctx) error {
	rows, err := database.InvoiceSummary()
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not load summary", "error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"summary": rows,
		"message": "success",
	})
}

func GetOutstandingByTerm(c *fiber.Ctx) error {
	term := c.Query("term")
	if term == "" {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "term query parameter is required"})
	}

	rows, err := database.OutstandingByTerm(term)
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not load outstanding students", "error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"students": rows,
		"message":  "success",
	})
}
