package models

import "gorm.io/gorm"

// Departments lists the valid Profile department values.
var Departments = []string{"MARKETING", "SALES", "ENGINEERING", "HR"}

// User represents a registered account.
type User struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string  `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string  `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Profile    Profile `json:"profile" gorm:"foreignKey:UserID"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Profile holds the user-facing identity attributes, distinct from login
// credentials. Exactly one Profile exists per User.
type Profile struct {
	ID             string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID         string `json:"userId" gorm:"uniqueIndex;type:varchar(36)"`
	FirstName      string `json:"firstName" gorm:"type:varchar(100)" validate:"required"`
	LastName       string `json:"lastName" gorm:"type:varchar(100)" validate:"required"`
	Department     string `json:"department" gorm:"type:varchar(32);default:MARKETING" validate:"omitempty,oneof=MARKETING SALES ENGINEERING HR"`
	ProfilePicture string `json:"profilePicture" gorm:"type:varchar(512)"`
	gorm.Model
}
