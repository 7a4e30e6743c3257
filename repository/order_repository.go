package repository

import (
	"context"

	"course-payment-service/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderRepository is the persistence boundary for reconciled orders.
type OrderRepository interface {
	Upsert(ctx context.Context, order *models.Order) error
	FindByReference(ctx context.Context, orderReference string) (*models.Order, error)
}

type gormOrderRepo struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) OrderRepository {
	return &gormOrderRepo{db: db}
}

// Upsert inserts or overwrites the row keyed by order_reference. The
// database provides the last-write-wins guarantee for concurrent or
// redelivered callbacks; there is no read-modify-write cycle here.
func (r *gormOrderRepo) Upsert(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "order_reference"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"amount", "currency", "status", "customer_email", "customer_phone",
			"product_name", "card_pan", "card_type", "payment_system",
			"processed_at", "updated_at",
		}),
	}).Create(order).Error
}

func (r *gormOrderRepo) FindByReference(ctx context.Context, orderReference string) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).Where("order_reference = ?", orderReference).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
