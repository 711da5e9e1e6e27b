package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestor-xarxa/internal/domain"
	httpez "gestor-xarxa/internal/transport/http/ez"
	resp "gestor-xarxa/internal/transport/http/response"
)

type ResourceHandler struct {
	repo domain.ResourceRepository
	log  *zap.Logger
}

func NewResourceHandler(repo domain.ResourceRepository, l *zap.Logger) *ResourceHandler {
	return &ResourceHandler{repo: repo, log: l}
}

type createResourceIn struct {
	Name        *string `json:"nom_recurs"`
	Path        *string `json:"ruta_xarxa"`
	Description *string `json:"descripcio"`
	Notes       *string `json:"notes"`
}

func (h *ResourceHandler) MountAPI(api *gin.RouterGroup) {
	e := httpez.New(api, h.log)

	httpez.RegisterAction(e, httpez.Action[createResourceIn]{
		Method: http.MethodPost,
		Path:   "/recursos",
		Binder: httpez.BindJSON,
		Handler: func(c *gin.Context, in *createResourceIn) (resp.Resp, error) {
			r := &domain.SharedResource{
				Name:        in.Name,
				Path:        in.Path,
				Description: in.Description,
				Notes:       in.Notes,
			}
			if err := h.repo.Create(c.Request.Context(), r); err != nil {
				return resp.Resp{}, err
			}
			return resp.OK(r), nil
		},
	})

	httpez.RegisterAction(e, httpez.Action[struct{}]{
		Method: http.MethodGet,
		Path:   "/recursos",
		Binder: httpez.BindNone,
		Handler: func(c *gin.Context, _ *struct{}) (resp.Resp, error) {
			rows, err := h.repo.List(c.Request.Context())
			if err != nil {
				return resp.Resp{}, err
			}
			return resp.OK(rows), nil
		},
	})
}
