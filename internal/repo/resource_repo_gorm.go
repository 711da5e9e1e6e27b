package repo

import (
	"context"

	"gorm.io/gorm"

	"gestor-xarxa/internal/domain"
)

type ResourceRepo struct{ db *gorm.DB }

func NewResourceRepo(db *gorm.DB) *ResourceRepo { return &ResourceRepo{db: db} }

func (r *ResourceRepo) Create(ctx context.Context, res *domain.SharedResource) error {
	return storeErr(r.db.WithContext(ctx).Create(res).Error)
}

func (r *ResourceRepo) List(ctx context.Context) ([]domain.SharedResource, error) {
	out := make([]domain.SharedResource, 0)
	err := r.db.WithContext(ctx).Order("id").Find(&out).Error
	return out, storeErr(err)
}
