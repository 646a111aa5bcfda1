package dao

import (
	"Reelgen/models"

	"golang.org/x/net/context"
	"gorm.io/gorm"
)

type HookTemplate struct {
	Repo[models.HookTemplate]
}

func NewHookTemplate(db *gorm.DB) *HookTemplate {
	return &HookTemplate{
		Repo: NewRepo[models.HookTemplate](db),
	}
}

func (h *HookTemplate) ListAll(ctx context.Context) ([]models.HookTemplate, error) {
	var templates []models.HookTemplate
	err := h.Db.WithContext(ctx).Order("created_at ASC").Find(&templates).Error
	return templates, err
}

// ExistAll 传入的 ID 是否全部存在
func (h *HookTemplate) ExistAll(ctx context.Context, ids []int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	var count int64
	err := h.Db.WithContext(ctx).
		Model(&models.HookTemplate{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count == int64(len(ids)), err
}
