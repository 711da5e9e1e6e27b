package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestor-xarxa/internal/domain"
	httpez "gestor-xarxa/internal/transport/http/ez"
	resp "gestor-xarxa/internal/transport/http/response"
)

type AssignmentHandler struct {
	repo domain.AssignmentRepository
	log  *zap.Logger
}

func NewAssignmentHandler(repo domain.AssignmentRepository, l *zap.Logger) *AssignmentHandler {
	return &AssignmentHandler{repo: repo, log: l}
}

type assignIn struct {
	UserID     *uint   `json:"usuari_id" form:"usuari_id"`
	ResourceID *uint   `json:"recurs_id" form:"recurs_id"`
	Permission *string `json:"permis" form:"permis"`
}

// refs returns both ids, or ErrMissingReference if either is absent or zero.
func (in *assignIn) refs() (userID, resourceID uint, err error) {
	if in.UserID == nil || in.ResourceID == nil || *in.UserID == 0 || *in.ResourceID == 0 {
		return 0, 0, domain.ErrMissingReference
	}
	return *in.UserID, *in.ResourceID, nil
}

func (h *AssignmentHandler) MountAPI(api *gin.RouterGroup) {
	e := httpez.New(api, h.log)

	httpez.RegisterAction(e, httpez.Action[assignIn]{
		Method:  http.MethodPost,
		Path:    "/assignar_recurs",
		Binder:  httpez.BindJSON,
		Handler: h.assign,
	})
	httpez.RegisterAction(e, httpez.Action[assignIn]{
		Method:  http.MethodDelete,
		Path:    "/revocar_recurs",
		Binder:  httpez.BindJSONOrQuery,
		Handler: h.revoke,
	})
	httpez.RegisterAction(e, httpez.Action[struct{}]{
		Method:  http.MethodDelete,
		Path:    "/assignacions/:id",
		Binder:  httpez.BindNone,
		Handler: h.revokeByID,
	})
	httpez.RegisterAction(e, httpez.Action[struct{}]{
		Method:  http.MethodGet,
		Path:    "/usuaris/:usuari_id/recursos",
		Binder:  httpez.BindNone,
		Handler: h.listForUser,
	})
}

func (h *AssignmentHandler) assign(c *gin.Context, in *assignIn) (resp.Resp, error) {
	userID, resourceID, err := in.refs()
	if err != nil {
		return resp.Resp{}, err
	}
	a := &domain.Assignment{UserID: userID, ResourceID: resourceID, Permission: in.Permission}
	if err := h.repo.Assign(c.Request.Context(), a); err != nil {
		return resp.Resp{}, err
	}
	return resp.Msg(resp.MsgAssigned, a), nil
}

// revoke deletes every row for the pair; zero deletions is not an error.
func (h *AssignmentHandler) revoke(c *gin.Context, in *assignIn) (resp.Resp, error) {
	userID, resourceID, err := in.refs()
	if err != nil {
		return resp.Resp{}, err
	}
	n, err := h.repo.Revoke(c.Request.Context(), userID, resourceID)
	if err != nil {
		return resp.Resp{}, err
	}
	return resp.Changes(resp.MsgRevoked, n, nil), nil
}

func (h *AssignmentHandler) revokeByID(c *gin.Context, _ *struct{}) (resp.Resp, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return resp.Resp{}, httpez.BadRequest("id d'assignació invàlid")
	}
	n, err := h.repo.RevokeByID(c.Request.Context(), uint(id))
	if err != nil {
		return resp.Resp{}, err
	}
	return resp.Changes(resp.MsgRevoked, n, nil), nil
}

func (h *AssignmentHandler) listForUser(c *gin.Context, _ *struct{}) (resp.Resp, error) {
	userID, err := strconv.ParseUint(c.Param("usuari_id"), 10, 64)
	if err != nil {
		return resp.Resp{}, httpez.BadRequest("usuari_id invàlid")
	}
	rows, err := h.repo.ListForUser(c.Request.Context(), uint(userID))
	if err != nil {
		return resp.Resp{}, err
	}
	return resp.OK(rows), nil
}
