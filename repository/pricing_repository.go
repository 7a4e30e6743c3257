package repository

import (
	"context"

	"course-payment-service/models"

	"gorm.io/gorm"
)

// PricingRepository reads the static tier configuration. Writes go through
// the admin back-office, never through this service.
type PricingRepository interface {
	LoadTiers(ctx context.Context) (map[string]models.PricingTier, error)
}

type gormPricingRepo struct {
	db *gorm.DB
}

func NewGormPricingRepository(db *gorm.DB) PricingRepository {
	return &gormPricingRepo{db: db}
}

func (r *gormPricingRepo) LoadTiers(ctx context.Context) (map[string]models.PricingTier, error) {
	var rows []models.PricingTier
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	tiers := make(map[string]models.PricingTier, len(rows))
	for _, row := range rows {
		tiers[row.Key] = row
	}
	return tiers, nil
}
