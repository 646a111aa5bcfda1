package dao

import (
	"context"

	"Reelgen/models"

	"gorm.io/gorm"
)

type VideoTemplate struct {
	Repo[models.VideoTemplate]
}

func NewVideoTemplate(db *gorm.DB) *VideoTemplate {
	return &VideoTemplate{
		Repo: NewRepo[models.VideoTemplate](db),
	}
}

func (v *VideoTemplate) ListAll(ctx context.Context) ([]models.VideoTemplate, error) {
	var templates []models.VideoTemplate
	err := v.Db.WithContext(ctx).Order("created_at ASC").Find(&templates).Error
	return templates, err
}

// ListByType 按模板类型过滤
func (v *VideoTemplate) ListByType(ctx context.Context, videoType string) ([]models.VideoTemplate, error) {
	var templates []models.VideoTemplate
	err := v.Db.WithContext(ctx).
		Where("type = ?", videoType).
		Order("created_at ASC").
		Find(&templates).Error
	return templates, err
}
