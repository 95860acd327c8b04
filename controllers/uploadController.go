package controllers

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kovvurisuryavenkatareddy/school-management-sub000/database"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/models"
	"github.com/kovvurisuryavenkatareddy/school-management-sub000/storage"

	"github.com/gofiber/fiber/v2"
)

func objectPath(prefix, filename string) string {
	return fmt.Sprintf("%s/%d%s", prefix, time.Now().UnixNano(), filepath.Ext(filename))
}

// UploadLogo stores the school logo in object storage and saves the public
// URL on the (single-row) school profile.
func UploadLogo(c *fiber.Ctx) error {
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

	url, err := storage.Upload(storage.LogoBucket,
		objectPath("logo", fileHeader.Filename), file,
		fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "upload failed", "error": err.Error()})
	}

	var profile models.SchoolProfile
	database.DB.First(&profile)
	profile.LogoURL = url
	if err := database.DB.Save(&profile).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not save logo URL", "error": err.Error()})
	}

	logActivity(c, "school.logo", "school_profile", fmt.Sprint(profile.ID), fiber.Map{"url": url})
	return c.JSON(fiber.Map{
		"url":     url,
		"message": "success",
	})
}

// UploadConcessionLetter stores a concession permission letter and attaches
// its public URL to the student.
func UploadConcessionLetter(c *fiber.Ctx) error {
	var student models.Student
	if err := database.DB.First(&student, "id = ?", c.Params("id")).Error; err != nil {
		return err
	}

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

	url, err := storage.Upload(storage.LetterBucket,
		objectPath(fmt.Sprintf("student-%d", student.ID), fileHeader.Filename), file,
		fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "upload failed", "error": err.Error()})
	}

	if err := database.DB.Model(&student).
		Update("concession_letter_url", url).Error; err != nil {
		c.Status(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{"message": "Could not save letter URL", "error": err.Error()})
	}

	logActivity(c, "concession.letter", "student", fmt.Sprint(student.ID), fiber.Map{"url": url})
	return c.JSON(fiber.Map{
		"url":     url,
		"message": "success",
	})
}
