package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is the persisted final state of a payment, keyed by the order
// reference. Redelivered callbacks overwrite the mutable fields
// (last-write-wins); no history is kept.
type Order struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderReference string    `gorm:"uniqueIndex;not null"`
	Amount         float64   `gorm:"not null"`
	Currency       string    `gorm:"type:varchar(10);not null"`
	Status         string    `gorm:"type:varchar(20);not null"`
	CustomerEmail  *string   `gorm:"type:varchar(255)"`
	CustomerPhone  *string   `gorm:"type:varchar(32)"`
	ProductName    *string   `gorm:"type:varchar(255)"`
	CardPan        *string   `gorm:"type:varchar(32)"` // masked PAN as delivered by the gateway
	CardType       *string   `gorm:"type:varchar(20)"`
	PaymentSystem  *string   `gorm:"type:varchar(40)"`
	ProcessedAt    *time.Time
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}
