// api/handlers/content_handlers.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Amar3x3/seoAgent/models"
	"github.com/Amar3x3/seoAgent/store"
)

type ContentHandlers struct {
	ContentStore *store.ContentStore
}

func NewContentHandlers(s *store.ContentStore) *ContentHandlers {
	return &ContentHandlers{ContentStore: s}
}

// Homepage renders the orthopedics landing page with the current
// dynamic content.
func (h *ContentHandlers) Homepage(c *gin.Context) {
	content := h.ContentStore.Get()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":          content.Title,
		"description":    content.Description,
		"page_h1":        content.PageH1,
		"page_paragraph": content.PageParagraph,
	})
}

// GetMetadata returns the four current content fields.
func (h *ContentHandlers) GetMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, h.ContentStore.Get())
}

// UpdateMetadata partially updates the page content; omitted fields keep
// their stored values.
func (h *ContentHandlers) UpdateMetadata(c *gin.Context) {
	var req models.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Missing JSON payload"})
		return
	}

	h.ContentStore.Update(req)
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Website content updated."})
}
