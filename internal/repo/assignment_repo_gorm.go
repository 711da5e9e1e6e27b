package repo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gestor-xarxa/internal/domain"
)

type AssignmentRepo struct{ db *gorm.DB }

func NewAssignmentRepo(db *gorm.DB) *AssignmentRepo { return &AssignmentRepo{db: db} }

// Assign inserts the relation row. Any store failure, including a duplicate
// (user, resource) pair or a dangling reference, is an AssignmentConflict.
func (r *AssignmentRepo) Assign(ctx context.Context, a *domain.Assignment) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return domain.AssignmentConflict(err)
	}
	return nil
}

// Revoke removes every row for the pair and reports how many went away.
func (r *AssignmentRepo) Revoke(ctx context.Context, userID, resourceID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("usuari_id = ? AND recurs_id = ?", userID, resourceID).
		Delete(&domain.Assignment{})
	if res.Error != nil {
		return 0, storeErr(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *AssignmentRepo) RevokeByID(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Assignment{})
	if res.Error != nil {
		return 0, storeErr(res.Error)
	}
	return res.RowsAffected, nil
}

func (r *AssignmentRepo) ListForUser(ctx context.Context, userID uint) ([]domain.AssignedResource, error) {
	out := make([]domain.AssignedResource, 0)
	err := r.db.WithContext(ctx).
		Table("? AS r", clause.Table{Name: domain.TableResources}).
		Select("r.nom_recurs, r.ruta_xarxa, ur.recurs_id, ur.permis, ur.id AS assignacio_id").
		Joins("JOIN ? AS ur ON r.id = ur.recurs_id", clause.Table{Name: domain.TableAssignments}).
		Where("ur.usuari_id = ?", userID).
		Order("ur.id").
		Scan(&out).Error
	return out, storeErr(err)
}

var (
	_ domain.LifecycleRepository[domain.User]      = (*LifecycleRepo[domain.User])(nil)
	_ domain.LifecycleRepository[domain.Printer]   = (*LifecycleRepo[domain.Printer])(nil)
	_ domain.LifecycleRepository[domain.Equipment] = (*EquipmentRepo)(nil)
	_ domain.ResourceRepository                    = (*ResourceRepo)(nil)
	_ domain.AssignmentRepository                  = (*AssignmentRepo)(nil)
)
