package controllers

import (
	"encoding/json"
	"fmt"

	"github.com/kovvurisuryavenkatareddy/school-management-sub000/database"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/fees"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/middlewares"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/models"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type StudentInput struct {
	AdmissionNumber string `json:"admission_number" validate:"required"`
	RollNumber      string `json:"roll_number"`
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name"`
	Gender          string `json:"gender"`
	StudentType     string `json:"student_type"`
	StudyingYear    string `json:"studying_year" validate:"required"`
	Section         string `json:"section"`
	ParentName      string `json:"parent_name"`
	ParentPhone     string `json:"parent_phone"`
	Email           string `json:"email" validate:"omitempty,email"`
	Address         string `json:"address"`

	// Optional fee document; stored canonical regardless of input shape.
	FeeStructure json.RawMessage `json:"fee_structure"`
}

// structureJSON marshals a normalized structure for the jsonb column.
func structureJSON(s fees.Structure) datatypes.JSON {
	b, err := json.Marshal(s)
	if err != nil {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(b)
}

// ledger projects payment rows into the slice the aggregator consumes.
func ledger(payments []models.Payment) []fees.Payment {
	out := make([]fees.Payment, 0, len(payments))
	for _, p := range payments {
		out = append(out, fees.Payment{FeeType: p.FeeType, Amount: p.Amount})
	}
	return out
}

func CreateStudent(c *fiber.Ctx) error {
	var input StudentInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	var structure fees.Structure
	if len(input.FeeStructure) > 0 {
		structure = fees.Normalize(input.FeeStructure, fees.SplitFirstTerm)
	} else {
		structure = fees.Default(fees.StudyingYears, input.StudentType)
	}

	student := models.Student{
		AdmissionNumber: input.AdmissionNumber,
		RollNumber:      input.RollNumber,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Gender:          input.Gender,
		StudentType:     input.StudentType,
		StudyingYear:    input.StudyingYear,
		Section:         input.Section,
		Status:          models.StudentActive,
		ParentName:      input.ParentName,
		ParentPhone:     input.ParentPhone,
		Email:           input.Email,
		Address:         input.Address,
		FeeStructure:    structureJSON(structure),
	}

	tx := database.DB.Begin()
	if err := tx.Create(&student).Error; err != nil {
		tx.Rollback()
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not create student",
			"error":   err.Error(),
		})
	}
	tx.Commit()

	logActivity(c, "student.create", "student", fmt.Sprint(student.ID), fiber.Map{
		"admission_number": student.AdmissionNumber,
	})
	return c.Status(fiber.StatusCreated).JSON(student)
}

func GetStudents(c *fiber.Ctx) error {
	page := utils.ParseIntDefault(c.Query("page"), 1)
	limit := utils.ParseIntDefault(c.Query("limit"), 25)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 25
	}

	q := database.DB.Model(&models.Student{})
	if year := c.Query("studying_year"); year != "" {
		q = q.Where("studying_year = ?", year)
	}
	if typ := c.Query("student_type"); typ != "" {
		q = q.Where("student_type = ?", typ)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		q = q.Where("admission_number ILIKE ? OR first_name ILIKE ? OR last_name ILIKE ?", like, like, like)
	}

	var total int64
	q.Count(&total)

	var students []models.Student
	if err := q.Order("admission_number").
		Offset((page - 1) * limit).Limit(limit).
		Find(&students).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not load students", "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"total":    total,
		"page":     page,
		"message":  "success",
	})
}

func GetStudent(c *fiber.Ctx) error {
	var student models.Student
	if err := database.DB.First(&student, "id = ?", c.Params("id")).Error; err != nil {
		return err
	}

	var payments []models.Payment
	database.DB.Where("student_id = ?", student.ID).Order("created_at").Find(&payments)

	structure := fees.Normalize(student.FeeStructure, fees.SplitFirstTerm)
	table := fees.Reconcile(structure, ledger(payments))

	summary := map[string]fees.Cell{}
	for year := range table {
		summary[year] = fees.YearSummary(table, year)
	}

	return c.JSON(fiber.Map{
		"student":  student,
		"fees":     table,
		"summary":  summary,
		"payments": payments,
		"message":  "success",
	})
}

type StudentPatch struct {
	RollNumber   *string `json:"roll_number"`
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Gender       *string `json:"gender"`
	StudentType  *string `json:"student_type"`
	StudyingYear *string `json:"studying_year"`
	Section      *string `json:"section"`
	Status       *string `json:"status" validate:"omitempty,oneof=active promoted left graduated"`
	ParentName   *string `json:"parent_name"`
	ParentPhone  *string `json:"parent_phone"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Address      *string `json:"address"`
}

func UpdateStudent(c *fiber.Ctx) error {
	var patch StudentPatch
	if err := middlewares.BindAndValidate(c, &patch); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&patch)

	var student models.Student
	if err := database.DB.First(&student, "id = ?", c.Params("id")).Error; err != nil {
		return err
	}

	updates := utils.UpdatesFromPtrDTO(&patch, nil)
	if len(updates) == 0 {
		return c.JSON(student)
	}

	if err := database.DB.Model(&student).Updates(updates).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not update student",
			"error":   err.Error(),
		})
	}

	logActivity(c, "student.update", "student", fmt.Sprint(student.ID), updates)
	return c.JSON(student)
}

type ConcessionInput struct {
	StudyingYear string  `json:"studying_year" validate:"required"`
	Concession   float64 `json:"concession" validate:"gte=0"`
	LetterURL    string  `json:"letter_url" validate:"omitempty,url"`
}

// UpdateConcession replaces the year's Yearly Concession item. The structure
// invariant (at most one concession item per year) is enforced here.
func UpdateConcession(c *fiber.Ctx) error {
	var input ConcessionInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	var student models.Student
	if err := database.DB.First(&student, "id = ?", c.Params("id")).Error; err != nil {
		return err
	}

	structure := fees.Normalize(student.FeeStructure, fees.SplitFirstTerm)
	items := structure[input.StudyingYear]
	kept := make([]fees.Item, 0, len(items)+1)
	for _, it := range items {
		if it.Name != fees.ConcessionName {
			kept = append(kept, it)
		}
	}
	if input.Concession > 0 {
		kept = append(kept, fees.Item{
			Name:       fees.ConcessionName,
			Concession: input.Concession,
			TermName:   fees.TermTotal,
		})
	}
	structure[input.StudyingYear] = kept

	updates := map[string]any{"fee_structure": structureJSON(structure)}
	if input.LetterURL != "" {
		updates["concession_letter_url"] = input.LetterURL
	}
	if err := database.DB.Model(&student).Updates(updates).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not update concession",
			"error":   err.Error(),
		})
	}

	logActivity(c, "concession.update", "student", fmt.Sprint(student.ID), fiber.Map{
		"studying_year": input.StudyingYear,
		"concession":    input.Concession,
		"letter_url":    input.LetterURL,
	})
	return c.JSON(student)
}

type PromoteInput struct {
	FromYear   string `json:"from_year" validate:"required"`
	ToYear     string `json:"to_year" validate:"required"`
	StudentIDs []uint `json:"student_ids"`
}

// PromoteStudents moves students between years as independent sequential
// writes. Partial failure leaves a partially promoted batch; the caller only
// sees the aggregate counts.
func PromoteStudents(c *fiber.Ctx) error {
	var input PromoteInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	q := database.DB.Where("studying_year = ? AND status = ?", input.FromYear, models.StudentActive)
	if len(input.StudentIDs) > 0 {
		q = q.Where("id IN ?", input.StudentIDs)
	}

	var students []models.Student
	if err := q.Find(&students).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not load students", "error": err.Error()})
	}

	promoted, failed := 0, 0
	for i := range students {
		err := database.DB.Model(&students[i]).
			Update("studying_year", input.ToYear).Error
		if err != nil {
			failed++
			continue
		}
		promoted++
	}

	logActivity(c, "student.promote", "student", "", fiber.Map{
		"from_year": input.FromYear,
		"to_year":   input.ToYear,
		"promoted":  promoted,
		"failed":    failed,
	})
	return c.JSON(fiber.Map{
		"promoted": promoted,
		"failed":   failed,
		"message":  "success",
	})
}

// GetStudentFees returns the reconciliation table the fee summary screen and
// payment dialog share.
func GetStudentFees(c *fiber.Ctx) error {
	var student models.Student
	if err := database.DB.First(&student, "id = ?", c.Params("id")).Error; err != nil {
		return err
	}

	var payments []models.Payment
	database.DB.Where("student_id = ?", student.ID).Order("created_at").Find(&payments)

	structure := fees.Normalize(student.FeeStructure, fees.SplitFirstTerm)
	table := fees.Reconcile(structure, ledger(payments))

	summary := map[string]fees.Cell{}
	for year := range table {
		summary[year] = fees.YearSummary(table, year)
	}

	return c.JSON(fiber.Map{
		"fees":     table,
		"summary":  summary,
		"payments": payments,
		"message":  "success",
	})
}
