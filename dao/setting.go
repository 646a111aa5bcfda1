package dao

import (
	"context"

	"Reelgen/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Setting struct {
	Repo[models.Setting]
}

func NewSetting(db *gorm.DB) *Setting {
	return &Setting{
		Repo: NewRepo[models.Setting](db),
	}
}

func (s *Setting) FindByKey(ctx context.Context, key string) (*models.Setting, error) {
	return s.Repo.FindByWhere(ctx, "`key` = ?", key)
}

// Upsert 按 key 覆盖写
func (s *Setting) Upsert(ctx context.Context, setting *models.Setting) error {
	return s.Db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"kind", "value", "updated_at"}),
		}).
		Create(setting).Error
}

func (s *Setting) DeleteByKey(ctx context.Context, key string) error {
	return s.Db.WithContext(ctx).Where("`key` = ?", key).Delete(&models.Setting{}).Error
}
