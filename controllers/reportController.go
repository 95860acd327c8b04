package controllers

import (
	"time"

	"github.com/kovvurisuryavenkatareddy/school-management-sub000/database"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/fees"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/models"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/utils"

	"github.com/gofiber/fiber/v2"
)

func reportYear(c *fiber.Ctx) int {
	return utils.ParseIntDefault(c.Query("year"), time.Now().Year())
}

func GetMonthlyPayments(c *fiber.Ctx) error {
	rows, err := database.MonthlyPayments(reportYear(c))
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not load report", "error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"months":  rows,
		"message": "success",
	})
}

func GetMonthlyExpenses(c *fiber.Ctx) error {
	rows, err := database.MonthlyExpenses(reportYear(c))
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not load report", "error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"months":  rows,
		"message": "success",
	})
}

type feeRegisterRow struct {
	Student models.Student       `json:"student"`
	Fees    fees.Table           `json:"fees"`
	Summary map[string]fees.Cell `json:"summary"`
}

// GetFeeRegister reconciles every student of a studying year in one pass:
// the bulk variant of the per-student fee view, consumed by the register
// report screens.
func GetFeeRegister(c *fiber.Ctx) error {
	year := c.Query("studying_year")
	if year == "" {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "studying_year query parameter is required"})
	}

	var students []models.Student
	if err := database.DB.
		Where("studying_year = ?", year).
		Order("admission_number").
		Find(&students).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not load students", "error": err.Error()})
	}

	ids := make([]uint, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.ID)
	}

	// One ledger query for the whole register, grouped in memory.
	byStudent := map[uint][]models.Payment{}
	if len(ids) > 0 {
		var payments []models.Payment
		if err := database.DB.Where("student_id IN ?", ids).
			Order("created_at").Find(&payments).Error; err != nil {
			c.Status(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{"message": "Could not load payments", "error": err.Error()})
		}
		for _, p := range payments {
			byStudent[p.StudentID] = append(byStudent[p.StudentID], p)
		}
	}

	rows := make([]feeRegisterRow, 0, len(students))
	for _, s := range students {
		structure := fees.Normalize(s.FeeStructure, fees.SplitFirstTerm)
		table := fees.Reconcile(structure, ledger(byStudent[s.ID]))
		summary := map[string]fees.Cell{}
		for y := range table {
			summary[y] = fees.YearSummary(table, y)
		}
		rows = append(rows, feeRegisterRow{Student: s, Fees: table, Summary: summary})
	}

	return c.JSON(fiber.Map{
		"register": rows,
		"message":  "success",
	})
}
