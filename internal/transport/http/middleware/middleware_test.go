package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.POST("/api/usuaris/:id/:accio", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(KeyRequestID)) })
	return r
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	own := uuid.NewString()
	req := httptest.NewRequest(http.MethodPost, "/api/usuaris/1/historic", nil)
	req.Header.Set(KeyRequestID, own)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, own, w.Header().Get(KeyRequestID))
	assert.Equal(t, own, w.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/api/usuaris/1/historic", nil)
	req.Header.Set(KeyRequestID, "bad\nid")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	got := w.Header().Get(KeyRequestID)
	assert.NotEqual(t, "bad\nid", got)
	_, err := uuid.Parse(got)
	require.NoError(t, err)
}

func TestMetricsLabelsByRoute(t *testing.T) {
	r := newEngine(Metrics())
	c := httpReqTotal.WithLabelValues("/api/usuaris/:id/:accio", http.MethodPost, "200")
	before := testutil.ToFloat64(c)

	for _, p := range []string{"/api/usuaris/7/historic", "/api/usuaris/8/restaurar"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, p, nil))
	}
	assert.Equal(t, before+2, testutil.ToFloat64(c))

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(httpReqTotal.WithLabelValues("unmatched", http.MethodGet, "404")))
}
