package controllers

import (
	"encoding/json"
	"log"

	"github.com/kovvurisuryavenkatareddy/school-management-sub000/database"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/models"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// logActivity writes an audit row best-effort; a failed log write is logged
// locally but never fails the request that triggered it.
func logActivity(c *fiber.Ctx, action, entity, entityID string, details any) {
	actor, _ := c.Locals("email").(string)

	var blob datatypes.JSON
	if details != nil {
		if b, err := json.Marshal(details); err == nil {
			blob = datatypes.JSON(b)
		}
	}

	rec := models.ActivityLog{
		ActorEmail: actor,
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		Details:    blob,
	}
	if err := database.DB.Create(&rec).Error; err != nil {
		log.Printf("activity log write failed (%s %s/%s): %v", action, entity, entityID, err)
	}
}

func GetActivity(c *fiber.Ctx) error {
	page := utils.ParseIntDefault(c.Query("page"), 1)
	limit := utils.ParseIntDefault(c.Query("limit"), 50)
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	q := database.DB.Model(&models.ActivityLog{})
	if actor := c.Query("actor"); actor != "" {
		q = q.Where("actor_email = ?", actor)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}

	var total int64
	q.Count(&total)

	var logs []models.ActivityLog
	if err := q.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&logs).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not load activity", "error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"activity": logs,
		"total":    total,
		"page":     page,
		"message":  "success",
	})
}
