package handler

import (
	"go.uber.org/zap"

	"gestor-xarxa/internal/domain"
	httpez "gestor-xarxa/internal/transport/http/ez"
)

const msgPrinterNameRequired = "nom_impressora és obligatori"

type createPrinterIn struct {
	Name     *string `json:"nom_impressora"`
	Model    *string `json:"model"`
	Location *string `json:"ubicacio"`
	IP       *string `json:"ip"`
}

func NewPrinterHandler(repo domain.LifecycleRepository[domain.Printer], l *zap.Logger) *Lifecycle[domain.Printer, createPrinterIn] {
	return &Lifecycle[domain.Printer, createPrinterIn]{
		Path: "/impressores",
		Repo: repo,
		Validate: func(in *createPrinterIn) error {
			if in.Name == nil {
				return httpez.BadRequest(msgPrinterNameRequired)
			}
			return nil
		},
		Build: func(in *createPrinterIn) *domain.Printer {
			return &domain.Printer{
				Name:     *in.Name,
				Model:    in.Model,
				Location: in.Location,
				IP:       in.IP,
				State:    domain.StateActive,
			}
		},
		UpdatedFmt:  "Impressora %s actualitzada a estat: %s",
		NotFoundFmt: "Impressora %s no trobada.",
		Log:         l,
	}
}
