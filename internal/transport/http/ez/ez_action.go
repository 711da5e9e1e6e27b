package ez

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gestor-xarxa/internal/domain"
	resp "gestor-xarxa/internal/transport/http/response"
)

// EZ registers actions on a router group and logs their failures.
type EZ struct {
	g   *gin.RouterGroup
	log *zap.Logger
}

func New(g *gin.RouterGroup, l *zap.Logger) EZ {
	if l == nil {
		l = zap.NewNop()
	}
	return EZ{g: g, log: l}
}

type Binder string

const (
	BindJSON        Binder = "json"
	BindJSONOrQuery Binder = "json_or_query" // body if present, else ?query
	BindNone        Binder = "none"
)

// AErr is an error carrying the HTTP status it maps to.
type AErr struct {
	Code int
	Msg  string
	Err  error
}

func (e *AErr) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "action error"
}

func (e *AErr) Unwrap() error { return e.Err }

func BadRequest(msg string) error { return &AErr{Code: http.StatusBadRequest, Msg: msg} }

// FromError maps any handler error onto an AErr. Store and validation
// failures are 400 with the error text as message; only NotFound becomes 404.
func FromError(err error) *AErr {
	var ae *AErr
	if errors.As(err, &ae) {
		return ae
	}
	if domain.KindOf(err) == domain.KindNotFound {
		return &AErr{Code: http.StatusNotFound, Msg: err.Error(), Err: err}
	}
	return &AErr{Code: http.StatusBadRequest, Msg: err.Error(), Err: err}
}

// Action describes one endpoint: I is the bound input.
type Action[I any] struct {
	Method  string
	Path    string
	Binder  Binder
	Handler func(c *gin.Context, in *I) (resp.Resp, error)
}

// bindJSONOrQuery reads the JSON body when there is one. Chunked bodies report
// ContentLength -1, so only an empty body falls back to the query string.
func bindJSONOrQuery(c *gin.Context, in any) error {
	body := c.Request.Body
	if body != nil && body != http.NoBody && c.Request.ContentLength != 0 {
		err := c.ShouldBindJSON(in)
		if !errors.Is(err, io.EOF) {
			return err
		}
	}
	return c.ShouldBindQuery(in)
}

func RegisterAction[I any](e EZ, a Action[I]) {
	h := func(c *gin.Context) {
		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindJSONOrQuery:
			bindErr = bindJSONOrQuery(c, &in)
		}
		if bindErr != nil {
			c.JSON(http.StatusBadRequest, resp.Error(bindErr.Error()))
			return
		}

		out, err := a.Handler(c, &in)
		if err != nil {
			ae := FromError(err)
			e.log.Warn("action failed",
				zap.String("method", a.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Int("status", ae.Code),
				zap.String("kind", domain.KindOf(err).String()),
				zap.Error(err),
			)
			c.JSON(ae.Code, resp.Error(ae.Error()))
			return
		}
		c.JSON(http.StatusOK, out)
	}

	switch strings.ToUpper(a.Method) {
	case http.MethodGet:
		e.g.GET(a.Path, h)
	case http.MethodPut:
		e.g.PUT(a.Path, h)
	case http.MethodDelete:
		e.g.DELETE(a.Path, h)
	default:
		e.g.POST(a.Path, h)
	}
}
