package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/partkit/partkit/internal/domain/naming"
	"github.com/partkit/partkit/internal/infrastructure/config"
	"github.com/partkit/partkit/internal/interfaces/http/handler"
)

func TestSetup(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = "development"

	generator := naming.NewGenerator(naming.NewRegistry())
	h := handler.NewNamingHandler(generator, naming.NewAnalyzer(generator))

	engine, err := Setup(cfg, zap.NewNop(), h)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/names", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
