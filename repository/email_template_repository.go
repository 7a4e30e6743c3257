package repository

import (
	"context"

	"course-payment-service/models"

	"gorm.io/gorm"
)

// EmailTemplateRepository looks up admin-managed email templates.
type EmailTemplateRepository interface {
	FindActiveBySlug(ctx context.Context, slug string) (*models.EmailTemplate, error)
}

type gormEmailTemplateRepo struct {
	db *gorm.DB
}

func NewGormEmailTemplateRepository(db *gorm.DB) EmailTemplateRepository {
	return &gormEmailTemplateRepo{db: db}
}

func (r *gormEmailTemplateRepo) FindActiveBySlug(ctx context.Context, slug string) (*models.EmailTemplate, error) {
	var tpl models.EmailTemplate
	if err := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&tpl).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}
