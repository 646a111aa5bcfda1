package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用数据访问层，各实体 DAO 内嵌复用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, m *T) error {
	return r.Db.WithContext(ctx).Create(m).Error
}

// Save 整行覆盖写
func (r Repo[T]) Save(ctx context.Context, m *T) error {
	return r.Db.WithContext(ctx).Save(m).Error
}

func (r Repo[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var m T
	if err := r.Db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByWhere 按条件查单条
func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var m T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// IsExist 按条件判断是否存在
func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	var m T
	err := r.Db.WithContext(ctx).Model(&m).Where(where, args...).Limit(1).Count(&count).Error
	return count > 0, err
}

func (r Repo[T]) DeleteByID(ctx context.Context, id int64) error {
	var m T
	return r.Db.WithContext(ctx).Where("id = ?", id).Delete(&m).Error
}
