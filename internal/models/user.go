package models

import "gorm.io/gorm"

// User is the account identity a Gamer profile wraps.
// Accounts are provisioned outside this service.
type User struct {
	gorm.Model
	Username  string `gorm:"size:150;unique;not null"`
	FirstName string `gorm:"size:150"`
	LastName  string `gorm:"size:150"`
	Email     string `gorm:"size:255"`
	IsStaff   bool   `gorm:"not null;default:false"`
}

// FullName joins first and last name with a single space.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
