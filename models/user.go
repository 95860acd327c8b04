package models

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Roles the portal distinguishes.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

type User struct {
	Id        string `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name" gorm:"not null"`
	LastName  string `json:"last_name"`
	Password  []byte `json:"-" gorm:"not null"`
	Email     string `json:"email" gorm:"unique;not null"`
	Role      string `json:"role" gorm:"type:VARCHAR(20);not null;default:cashier"`
}

func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if user.Id == "" {
		user.Id = uuid.NewString()
	}
	return
}

func (user *User) SetPassword(password string) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), 12)
	user.Password = hashedPassword
}

func (user *User) ComparePassword(password string) error {
	return bcrypt.CompareHashAndPassword(user.Password, []byte(password))
}

// CashierProfile is the operational row paired with a cashier login. The
// login and the profile are created together; if the profile insert fails
// the just-created login is deleted again (see accountController).
type CashierProfile struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	UserID   string `json:"user_id" gorm:"uniqueIndex;not null"`
	User     User   `json:"-" gorm:"foreignKey:UserID;references:Id;constraint:OnDelete:CASCADE"`
	FullName string `json:"full_name" gorm:"not null"`
	Phone    string `json:"phone"`
	Counter  string `json:"counter"`
	Active   bool   `json:"active" gorm:"default:true"`
}
