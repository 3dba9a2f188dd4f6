package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partkit/partkit/internal/domain/naming"
	"github.com/partkit/partkit/internal/interfaces/http/dto"
	"github.com/partkit/partkit/internal/interfaces/http/middleware"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	if err := middleware.RegisterCustomValidators(); err != nil {
		panic(err)
	}
	generator := naming.NewGenerator(naming.NewRegistry())
	h := NewNamingHandler(generator, naming.NewAnalyzer(generator))

	engine := gin.New()
	engine.GET("/health", Health)
	engine.POST("/api/v1/names", h.GenerateName)
	engine.POST("/api/v1/analyses", h.Analyze)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	return w
}

const screwBody = `{
	"part_number": "91255A540",
	"detail_description": "Button Head Hex Drive Screw",
	"family_description": "Button Head Hex Drive Screws",
	"product_category": "Screws and Bolts",
	"specifications": [
		{"attribute": "Material", "values": ["18-8 Stainless Steel"]},
		{"attribute": "Thread Size", "values": ["1/4\"-20"]},
		{"attribute": "Length", "values": ["3/4\""]},
		{"attribute": "Drive Style", "values": ["Hex"]}
	]
}`

func TestGenerateName(t *testing.T) {
	w := postJSON(t, newTestRouter(), "/api/v1/names", screwBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool             `json:"success"`
		Data    dto.NameResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "button_head_screw", resp.Data.DetectedCategory)
	assert.Equal(t, "BHS-SS188-1/4x20-0.75-HEX", resp.Data.GeneratedName)
}

func TestGenerateNameMissingPartNumber(t *testing.T) {
	w := postJSON(t, newTestRouter(), "/api/v1/names", `{"family_description": "Hex Nuts"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestGenerateNameInvalidJSON(t *testing.T) {
	w := postJSON(t, newTestRouter(), "/api/v1/names", "{not json")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyze(t *testing.T) {
	w := postJSON(t, newTestRouter(), "/api/v1/analyses", screwBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	var analysis map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &analysis))
	assert.Equal(t, "91255A540", analysis["part_number"])
	assert.Equal(t, "button_head_screw", analysis["detected_type"])
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	newTestRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
