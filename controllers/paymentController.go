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

type PaymentInput struct {
	StudentID     uint    `json:"student_id" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	FeeType       string  `json:"fee_type" validate:"required"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=cash upi"`
	UTRNumber     string  `json:"utr_number"`
	Notes         string  `json:"notes"`
}

// CreatePayment appends to the ledger. There is no update or void; a wrong
// entry is corrected out of band.
func CreatePayment(c *fiber.Ctx) error {
	var input PaymentInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	// UTR is mandatory for UPI collections, meaningless for cash.
	if input.PaymentMethod == models.MethodUPI && input.UTRNumber == "" {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "utr_number is required for upi payments"})
	}
	if input.PaymentMethod == models.MethodCash {
		input.UTRNumber = ""
	}

	var student models.Student
	if err := database.DB.First(&student, "id = ?", input.StudentID).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "unknown student"})
	}

	recordedBy, _ := c.Locals("email").(string)
	payment := models.Payment{
		StudentID:     input.StudentID,
		Amount:        input.Amount,
		FeeType:       input.FeeType,
		PaymentMethod: input.PaymentMethod,
		UTRNumber:     input.UTRNumber,
		ReceiptNumber: utils.ReceiptNumber(),
		Notes:         input.Notes,
		RecordedBy:    recordedBy,
	}

	tx := database.DB.Begin()
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not record payment",
			"error":   err.Error(),
		})
	}
	tx.Commit()

	logActivity(c, "payment.create", "payment", fmt.Sprint(payment.ID), fiber.Map{
		"student_id":     payment.StudentID,
		"amount":         payment.Amount,
		"fee_type":       payment.FeeType,
		"receipt_number": payment.ReceiptNumber,
	})
	return c.Status(fiber.StatusCreated).JSON(payment)
}

func GetPayments(c *fiber.Ctx) error {
	page := utils.ParseIntDefault(c.Query("page"), 1)
	limit := utils.ParseIntDefault(c.Query("limit"), 25)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 25
	}

	q := database.DB.Model(&models.Payment{})
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			q = q.Where("created_at >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			q = q.Where("created_at < ?", t.AddDate(0, 0, 1))
		}
	}
	if method := c.Query("payment_method"); method != "" {
		q = q.Where("payment_method = ?", method)
	}

	var total int64
	q.Count(&total)

	var payments []models.Payment
	if err := q.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&payments).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not load payments", "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"payments": payments,
		"total":    total,
		"page":     page,
		"message":  "success",
	})
}

func GetStudentPayments(c *fiber.Ctx) error {
	var payments []models.Payment
	if err := database.DB.Where("student_id = ?", c.Params("id")).
		Order("created_at DESC").Find(&payments).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not load payments", "error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"payments": payments,
		"message":  "success",
	})
}
