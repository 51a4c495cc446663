package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Amar3x3/seoAgent/models"
	"github.com/Amar3x3/seoAgent/store"
)

func contentRouter() (*gin.Engine, *store.ContentStore) {
	gin.SetMode(gin.TestMode)

	contentStore := store.NewContentStore()
	h := NewContentHandlers(contentStore)

	r := gin.New()
	r.GET("/api/metadata", h.GetMetadata)
	r.POST("/api/update-metadata", h.UpdateMetadata)
	return r, contentStore
}

func TestGetMetadataReturnsCurrentContent(t *testing.T) {
	r, contentStore := contentRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/metadata", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got models.SiteContent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, contentStore.Get(), got)
}

func TestUpdateMetadataAppliesPartialUpdate(t *testing.T) {
	r, contentStore := contentRouter()
	before := contentStore.Get()

	body := `{"title": "Knee & Hip Care | Apollo", "page_h1": "Orthopedic Excellence"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/update-metadata", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "Website content updated.", resp["message"])

	after := contentStore.Get()
	assert.Equal(t, "Knee & Hip Care | Apollo", after.Title)
	assert.Equal(t, "Orthopedic Excellence", after.PageH1)
	assert.Equal(t, before.Description, after.Description)
	assert.Equal(t, before.PageParagraph, after.PageParagraph)
}

func TestUpdateMetadataRejectsBadPayload(t *testing.T) {
	r, contentStore := contentRouter()
	before := contentStore.Get()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/update-metadata", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp["status"])

	assert.Equal(t, before, contentStore.Get(), "a rejected request must not change the content")
}
