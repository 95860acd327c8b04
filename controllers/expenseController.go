package controllers

import (
	"fmt"
	"time"

	"github.com/kovvurisuryavenkatareddy/school-management-sub000/database"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/middlewares"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/models"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/utils"

	"github.com/gofiber/fiber/v2"
)

type ExpenseInput struct {
	Category    string  `json:"category" validate:"required"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
	SpentAt     string  `json:"spent_at" validate:"required"` // YYYY-MM-DD
}

func CreateExpense(c *fiber.Ctx) error {
	var input ExpenseInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	spentAt, err := time.Parse("2006-01-02", input.SpentAt)
	if err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "invalid spent_at, want YYYY-MM-DD"})
	}

	recordedBy, _ := c.Locals("email").(string)
	expense := models.Expense{
		Category:    input.Category,
		Description: input.Description,
		Amount:      input.Amount,
		SpentAt:     spentAt,
		RecordedBy:  recordedBy,
	}

	if err := database.DB.Create(&expense).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not create expense",
			"error":   err.Error(),
		})
	}

	logActivity(c, "expense.create", "expense", fmt.Sprint(expense.ID), fiber.Map{
		"category": expense.Category,
		"amount":   expense.Amount,
	})
	return c.Status(fiber.StatusCreated).JSON(expense)
}

func GetExpenses(c *fiber.Ctx) error {
	page := utils.ParseIntDefault(c.Query("page"), 1)
	limit := utils.ParseIntDefault(c.Query("limit"), 25)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 25
	}

	q := database.DB.Model(&models.Expense{})
	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("spent_at >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("spent_at < ?", t.AddDate(0, 0, 1))
		}
	}

	var total int64
	q.Count(&total)

	var expenses []models.Expense
	if err := q.Order("spent_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&expenses).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not load expenses", "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"expenses": expenses,
		"total":    total,
		"page":     page,
		"message":  "success",
	})
}

type ExpensePatch struct {
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount" validate:"omitempty,gt=0"`
}

func UpdateExpense(c *fiber.Ctx) error {
	var patch ExpensePatch
	if err := middlewares.BindAndValidate(c, &patch); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&patch)

	var expense models.Expense
	if err := database.DB.First(&expense, "id = ?", c.Params("id")).Error; err != nil {
		return err
	}

	updates := utils.UpdatesFromPtrDTO(&patch, nil)
	if len(updates) == 0 {
		return c.JSON(expense)
	}

	if err := database.DB.Model(&expense).Updates(updates).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not update expense",
			"error":   err.Error(),
		})
	}
	return c.JSON(expense)
}

func DeleteExpense(c *fiber.Ctx) error {
	var expense models.Expense
	if err := database.DB.First(&expense, "id = ?", c.Params("id")).Error; err != nil {
		return err
	}

	if err := database.DB.Delete(&expense).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"message": "Could not delete expense",
			"error":   err.Error(),
		})
	}

	logActivity(c, "expense.delete", "expense", fmt.Sprint(expense.ID), fiber.Map{
		"category": expense.Category,
		"amount":   expense.Amount,
	})
	return c.JSON(fiber.Map{"message": "success"})
}
