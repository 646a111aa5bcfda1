package dao

import (
	"context"

	"Reelgen/models"

	"gorm.io/gorm"
)

type ThumbnailTemplate struct {
	Repo[models.ThumbnailTemplate]
}

func NewThumbnailTemplate(db *gorm.DB) *ThumbnailTemplate {
	return &ThumbnailTemplate{
		Repo: NewRepo[models.ThumbnailTemplate](db),
	}
}

func (t *ThumbnailTemplate) ListAll(ctx context.Context) ([]models.ThumbnailTemplate, error) {
	var templates []models.ThumbnailTemplate
	err := t.Db.WithContext(ctx).Order("created_at ASC").Find(&templates).Error
	return templates, err
}

// ExistAll 传入的 ID 是否全部存在
func (t *ThumbnailTemplate) ExistAll(ctx context.Context, ids []int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var count int64
	err := t.Db.WithContext(ctx).
		Model(&models.ThumbnailTemplate{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count == int64(len(ids)), err
}
