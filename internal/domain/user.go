package domain

import (
	"time"

	"gorm.io/gorm"
)

// User is the identity record. The password hash is loaded only for
// authentication and is never serialized back to callers.
type User struct {
	ID        int64          `json:"id" gorm:"primaryKey"`
	Email     string         `json:"email" gorm:"size:50;uniqueIndex;not null"`
	FirstName string         `json:"firstName" gorm:"size:50;not null"`
	LastName  string         `json:"lastName" gorm:"size:50;not null"`
	Password  string         `json:"-" gorm:"size:100;not null"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
