package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestor-xarxa/internal/domain"
	httpez "gestor-xarxa/internal/transport/http/ez"
	resp "gestor-xarxa/internal/transport/http/response"
)

// Lifecycle mounts the four endpoints shared by every entity with an estat
// column: create, list active, list historic and the state transition.
// T is the stored model, In the create payload.
type Lifecycle[T any, In any] struct {
	Path  string
	Repo  domain.LifecycleRepository[T]
	Build func(in *In) *T
	// Validate, when set, rejects a payload before it reaches the store.
	Validate func(in *In) error

	// Messages take the raw id parameter; UpdatedFmt also takes the new state.
	UpdatedFmt  string
	NotFoundFmt string

	Log *zap.Logger
}

func (h *Lifecycle[T, In]) MountAPI(api *gin.RouterGroup) {
	e := httpez.New(api, h.Log)

	httpez.RegisterAction(e, httpez.Action[In]{
		Method:  http.MethodPost,
		Path:    h.Path,
		Binder:  httpez.BindJSON,
		Handler: h.create,
	})
	httpez.RegisterAction(e, httpez.Action[struct{}]{
		Method:  http.MethodGet,
		Path:    h.Path,
		Binder:  httpez.BindNone,
		Handler: h.list(domain.StateActive),
	})
	httpez.RegisterAction(e, httpez.Action[struct{}]{
		Method:  http.MethodGet,
		Path:    h.Path + "/historic",
		Binder:  httpez.BindNone,
		Handler: h.list(domain.StateHistoric),
	})
	httpez.RegisterAction(e, httpez.Action[struct{}]{
		Method:  http.MethodPost,
		Path:    h.Path + "/:id/:accio",
		Binder:  httpez.BindNone,
		Handler: h.transition,
	})
}

func (h *Lifecycle[T, In]) create(c *gin.Context, in *In) (resp.Resp, error) {
	if h.Validate != nil {
		if err := h.Validate(in); err != nil {
			return resp.Resp{}, err
		}
	}
	m := h.Build(in)
	if err := h.Repo.Create(c.Request.Context(), m); err != nil {
		return resp.Resp{}, err
	}
	return resp.OK(m), nil
}

func (h *Lifecycle[T, In]) list(st domain.State) func(*gin.Context, *struct{}) (resp.Resp, error) {
	return func(c *gin.Context, _ *struct{}) (resp.Resp, error) {
		rows, err := h.Repo.ListByState(c.Request.Context(), st)
		if err != nil {
			return resp.Resp{}, err
		}
		return resp.OK(rows), nil
	}
}

// transition validates the action token before anything else; a missing row
// is detected from the affected-row count of the UPDATE itself.
func (h *Lifecycle[T, In]) transition(c *gin.Context, _ *struct{}) (resp.Resp, error) {
	st, err := domain.TargetState(c.Param("accio"))
	if err != nil {
		return resp.Resp{}, err
	}
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return resp.Resp{}, domain.NotFound(fmt.Sprintf(h.NotFoundFmt, raw))
	}
	n, err := h.Repo.SetState(c.Request.Context(), uint(id), st)
	if err != nil {
		return resp.Resp{}, err
	}
	if n == 0 {
		return resp.Resp{}, domain.NotFound(fmt.Sprintf(h.NotFoundFmt, raw))
	}
	return resp.Changes(fmt.Sprintf(h.UpdatedFmt, raw, st), n, gin.H{"id": id, "estat": st}), nil
}
