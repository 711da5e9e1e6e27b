package repo

import (
	"context"

	"gorm.io/gorm"

	"gestor-xarxa/internal/domain"
)

// LifecycleRepo stores any entity carrying an estat column.
type LifecycleRepo[T any] struct{ db *gorm.DB }

func NewLifecycleRepo[T any](db *gorm.DB) *LifecycleRepo[T] { return &LifecycleRepo[T]{db: db} }

func NewUserRepo(db *gorm.DB) *LifecycleRepo[domain.User] {
	return NewLifecycleRepo[domain.User](db)
}

func NewPrinterRepo(db *gorm.DB) *LifecycleRepo[domain.Printer] {
	return NewLifecycleRepo[domain.Printer](db)
}

func (r *LifecycleRepo[T]) Create(ctx context.Context, m *T) error {
	return storeErr(r.db.WithContext(ctx).Create(m).Error)
}

func (r *LifecycleRepo[T]) ListByState(ctx context.Context, st domain.State) ([]T, error) {
	out := make([]T, 0)
	err := r.db.WithContext(ctx).Where("estat = ?", st).Order("id").Find(&out).Error
	return out, storeErr(err)
}

// SetState refuses anything outside the two lifecycle states before the UPDATE.
func (r *LifecycleRepo[T]) SetState(ctx context.Context, id uint, st domain.State) (int64, error) {
	if !st.Valid() {
		return 0, domain.ErrInvalidAction
	}
	res := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Update("estat", st)
	if res.Error != nil {
		return 0, storeErr(res.Error)
	}
	return res.RowsAffected, nil
}
