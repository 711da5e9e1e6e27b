package handler

import (
	"go.uber.org/zap"

	"gestor-xarxa/internal/domain"
)

type createUserIn struct {
	Name       *string `json:"nom"`
	DNI        *string `json:"dni"`
	Location   *string `json:"ubicacio"`
	Department *string `json:"departament"`
	Groups     *string `json:"grups"`
	Notes      *string `json:"notes"`
}

func NewUserHandler(repo domain.LifecycleRepository[domain.User], l *zap.Logger) *Lifecycle[domain.User, createUserIn] {
	return &Lifecycle[domain.User, createUserIn]{
		Path: "/usuaris",
		Repo: repo,
		Build: func(in *createUserIn) *domain.User {
			return &domain.User{
				Name:       in.Name,
				DNI:        in.DNI,
				Location:   in.Location,
				Department: in.Department,
				Groups:     in.Groups,
				Notes:      in.Notes,
				State:      domain.StateActive,
			}
		},
		UpdatedFmt:  "Usuari %s actualitzat a estat: %s",
		NotFoundFmt: "Usuari %s no trobat.",
		Log:         l,
	}
}
