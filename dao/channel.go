package dao

import (
	"context"

	"Reelgen/models"

	"gorm.io/gorm"
)

type Channel struct {
	Repo[models.Channel]
}

func NewChannel(db *gorm.DB) *Channel {
	return &Channel{
		Repo: NewRepo[models.Channel](db),
	}
}

// ListChannels 按创建时间排序，onlyActive 时只取启用中的
func (c *Channel) ListChannels(ctx context.Context, onlyActive bool, page, pageSize int) ([]models.Channel, int64, error) {
	var channels []models.Channel

	db := c.Db.WithContext(ctx).Model(&models.Channel{})
	if onlyActive {
		db = db.Where("is_active = ?", true)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page > 0 && pageSize > 0 {
		db = db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
	if err := db.Order("created_at ASC").Find(&channels).Error; err != nil {
		return nil, 0, err
	}
	return channels, total, nil
}

// IsNameExist 判断频道名是否被占用
func (c *Channel) IsNameExist(ctx context.Context, name string, excludeID int64) bool {
	exist, _ := c.Repo.IsExist(ctx, "name = ? AND id <> ?", name, excludeID)
	return exist
}
