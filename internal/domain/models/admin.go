package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Admin represents a registrar account that can sign in to the registry
type Admin struct {
	BaseModel
	Username string `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Password string `gorm:"type:varchar(100);not null" json:"-"`
	Email    string `gorm:"type:varchar(100)" json:"email"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	// Role scopes what the account may administer: "admin_rw", "admin_rt".
	Role string `gorm:"type:varchar(20);not null;default:'admin_rw'" json:"role"`
}

// HashPassword hashes a plain-text password with bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash compares a plain-text password with its hash
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// BeforeSave hashes the password if a plain-text value was provided
func (a *Admin) BeforeSave(tx *gorm.DB) error {
	if a.Password != "" && len(a.Password) < 60 {
		hashed, err := HashPassword(a.Password)
		if err != nil {
			return err
		}
		a.Password = hashed
	}
	return nil
}
