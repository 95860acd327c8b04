package database

import (
	"log"
	"os"

	"github.com/kovvurisuryavenkatareddy/school-management-sub000/models"
)

// SeedAdmin creates the first admin login from ADMIN_EMAIL/ADMIN_PASSWORD
// when no admin exists yet. Without it a fresh deployment has no way in.
func SeedAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}

	var count int64
	DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return
	}

	admin := models.User{
		FirstName: "Administrator",
		Email:     email,
		Role:      models.RoleAdmin,
	}
	admin.SetPassword(password)
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("admin seed failed: %v", err)
		return
	}
	log.Printf("seeded admin account %s", email)
}
