package controllers

import (
	"errors"

	"github.com/kovvurisuryavenkatareddy/school-management-sub000/database"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/middlewares"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/models"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Privileged account management: platform admins and cashier accounts.
// A cashier is a login (users row) paired with a profile row; the pair is
// written in two steps with a compensating delete, mirroring how the
// original auth-provider + table pairing behaves.

func ListAdmins(c *fiber.Ctx) error {
	var admins []models.User
	if err := database.DB.Where("role = ?", models.RoleAdmin).
		Order("email").Find(&admins).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not load admins", "error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"admins":  admins,
		"message": "success",
	})
}

type AdminInput struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

func CreateAdmin(c *fiber.Ctx) error {
	var input AdminInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	var exists models.User
	err := database.DB.Where("email = ?", input.Email).First(&exists).Error
	if err == nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "email already exists"})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	admin := models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Role:      models.RoleAdmin,
	}
	admin.SetPassword(input.Password)

	if err := database.DB.Create(&admin).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not create admin",
			"error":   err.Error(),
		})
	}

	logActivity(c, "admin.create", "user", admin.Id, fiber.Map{"email": admin.Email})
	return c.Status(fiber.StatusCreated).JSON(admin)
}

func DeleteAdmin(c *fiber.Ctx) error {
	id := c.Params("id")
	if selfID, _ := c.Locals("userID").(string); selfID == id {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "cannot delete your own account"})
	}

	var admin models.User
	if err := database.DB.Where("id = ? AND role = ?", id, models.RoleAdmin).
		First(&admin).Error; err != nil {
		return err
	}

	if err := database.DB.Delete(&admin).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"message": "Could not delete admin",
			"error":   err.Error(),
		})
	}

	logActivity(c, "admin.delete", "user", admin.Id, fiber.Map{"email": admin.Email})
	return c.JSON(fiber.Map{"message": "success"})
}

type CashierInput struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone"`
	Counter  string `json:"counter"`
}

func CreateCashier(c *fiber.Ctx) error {
	var input CashierInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	var exists models.User
	err := database.DB.Where("email = ?", input.Email).First(&exists).Error
	if err == nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{"message": "email already exists"})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	user := models.User{
		FirstName: input.FullName,
		Email:     input.Email,
		Role:      models.RoleCashier,
	}
	user.SetPassword(input.Password)
	if err := database.DB.Create(&user).Error; err != nil {
		c.Status(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"message": "Could not create cashier login",
			"error":   err.Error(),
		})
	}

	profile := models.CashierProfile{
		UserID:   user.Id,
		FullName: input.FullName,
		Phone:    input.Phone,
		Counter:  input.Counter,
		Active:   true,
	}
	if err := database.DB.Create(&profile).Error; err != nil {
		// Compensate: remove the just-created login so no orphaned
		// credentials are left behind.
		database.DB.Delete(&user)
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"message": "Could not create cashier profile",
			"error":   err.Error(),
		})
	}

	logActivity(c, "cashier.create", "cashier", user.Id, fiber.Map{"email": user.Email})
	profile.User = user
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":    user,
		"profile": profile,
	})
}

func ListCashiers(c *fiber.Ctx) error {
	var profiles []models.CashierProfile
	if err := database.DB.Order("full_name").Find(&profiles).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not load cashiers", "error": err.Error()})
	}
	return c.JSON(fiber.Map{
		"cashiers": profiles,
		"message":  "success",
	})
}

type CashierPatch struct {
	FullName *string `json:"full_name"`
	Phone    *string `json:"phone"`
	Counter  *string `json:"counter"`
	Active   *bool   `json:"active"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}

func UpdateCashier(c *fiber.Ctx) error {
	var patch CashierPatch
	if err := middlewares.BindAndValidate(c, &patch); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&patch)

	var profile models.CashierProfile
	if err := database.DB.First(&profile, "id = ?", c.Params("id")).Error; err != nil {
		return err
	}

	// Password belongs to the login row, not the profile.
	if patch.Password != nil {
		var user models.User
		if err := database.DB.First(&user, "id = ?", profile.UserID).Error; err != nil {
			return err
		}
		user.SetPassword(*patch.Password)
		if err := database.DB.Model(&user).Update("password", user.Password).Error; err != nil {
			c.Status(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{"message": "Could not update password", "error": err.Error()})
		}
		patch.Password = nil
	}

	updates := utils.UpdatesFromPtrDTO(&patch, nil)
	if len(updates) > 0 {
		if err := database.DB.Model(&profile).Updates(updates).Error; err != nil {
			c.Status(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"message": "Could not update cashier",
				"error":   err.Error(),
			})
		}
	}

	logActivity(c, "cashier.update", "cashier", profile.UserID, updates)
	return c.JSON(profile)
}

func DeleteCashier(c *fiber.Ctx) error {
	var profile models.CashierProfile
	if err := database.DB.First(&profile, "id = ?", c.Params("id")).Error; err != nil {
		return err
	}

	// Deleting the login cascades to the profile row.
	if err := database.DB.Delete(&models.User{}, "id = ?", profile.UserID).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"message": "Could not delete cashier",
			"error":   err.Error(),
		})
	}

	logActivity(c, "cashier.delete", "cashier", profile.UserID, fiber.Map{"full_name": profile.FullName})
	return c.JSON(fiber.Map{"message": "success"})
}
