package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailTemplate is a row of the email_templates table managed by the admin
// back-office. Bodies use {{variable}} placeholders.
type EmailTemplate struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Slug      string    `gorm:"uniqueIndex;not null"`
	Name      string    `gorm:"not null"`
	Subject   string    `gorm:"not null"`
	BodyHTML  string    `gorm:"column:body_html;type:text;not null"`
	IsActive  bool      `gorm:"default:true"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
