package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nsxzhou1114/conduit-api/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(logger.RequestIDKey))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "client-id", w.Header().Get(RequestIDHeader))
}
