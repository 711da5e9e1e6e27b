package handler

import (
	"go.uber.org/zap"

	"gestor-xarxa/internal/domain"
)

type createEquipmentIn struct {
	Name     *string `json:"nom_equip"`
	IP       *string `json:"ip"`
	Model    *string `json:"model"`
	Location *string `json:"ubicacio"`
	Notes    *string `json:"notes"`
	OwnerID  *uint   `json:"usuari_id"`
}

func NewEquipmentHandler(repo domain.LifecycleRepository[domain.Equipment], l *zap.Logger) *Lifecycle[domain.Equipment, createEquipmentIn] {
	return &Lifecycle[domain.Equipment, createEquipmentIn]{
		Path: "/equips",
		Repo: repo,
		Build: func(in *createEquipmentIn) *domain.Equipment {
			return &domain.Equipment{
				Name:     in.Name,
				IP:       in.IP,
				Model:    in.Model,
				Location: in.Location,
				Notes:    in.Notes,
				OwnerID:  in.OwnerID,
				State:    domain.StateActive,
			}
		},
		UpdatedFmt:  "Equip %s actualitzat a estat: %s",
		NotFoundFmt: "Equip %s no trobat.",
		Log:         l,
	}
}
