package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(100);not null"`
	Email             string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash      string    `gorm:"type:varchar(255);not null"`
	Role              string    `gorm:"type:varchar(20);not null;index"`
	Title             string    `gorm:"type:varchar(255)"`
	Bio               string    `gorm:"type:text"`
	Expertise         string    `gorm:"type:text"` // JSON array
	Interests         string    `gorm:"type:text"` // JSON array
	ContactEmail      string    `gorm:"type:varchar(255)"`
	ContactEmailShown bool      `gorm:"column:contact_email_shown"`
	ContactPhone      string    `gorm:"type:varchar(50)"`
	ContactPhoneShown bool      `gorm:"column:contact_phone_shown"`
	Whatsapp          string    `gorm:"type:varchar(50)"`
	WhatsappShown     bool      `gorm:"column:whatsapp_shown"`
	PreferredMethod   string    `gorm:"type:varchar(20);default:'email'"`
	IsProfileComplete bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}
