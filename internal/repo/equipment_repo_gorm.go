package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gestor-xarxa/internal/domain"
)

// EquipmentRepo enriches the active listing with the owner's name.
type EquipmentRepo struct {
	*LifecycleRepo[domain.Equipment]
}

func NewEquipmentRepo(db *gorm.DB) *EquipmentRepo {
	return &EquipmentRepo{LifecycleRepo: NewLifecycleRepo[domain.Equipment](db)}
}

func (r *EquipmentRepo) ListByState(ctx context.Context, st domain.State) ([]domain.Equipment, error) {
	if st != domain.StateActive {
		return r.LifecycleRepo.ListByState(ctx, st)
	}
	out := make([]domain.Equipment, 0)
	err := r.db.WithContext(ctx).
		Table("? AS e", clause.Table{Name: domain.TableEquipment}).
		Select("e.*, u.nom AS nom_usuari").
		Joins("LEFT JOIN ? AS u ON e.usuari_id = u.id", clause.Table{Name: domain.TableUsers}).
		Where("e.estat = ?", st).
		Order("e.id").
		Find(&out).Error
	return out, storeErr(err)
}
