package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"immodok/internal/port"
)

// FileHandler serves stored original documents.
type FileHandler struct {
	store port.DocumentStore
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(store port.DocumentStore) *FileHandler {
	return &FileHandler{store: store}
}

// Download handles GET /api/v1/files/:id
// @Summary Download a stored document
// @Description Stream the original PDF bytes by file ID
// @Tags files
// @Produce application/pdf
// @Param id path string true "File ID"
// @Success 200 {file} binary "Original PDF"
// @Failure 404 {object} APIResponse "File not found"
// @Router /files/{id} [get]
func (h *FileHandler) Download(c *gin.Context) {
	fileID := c.Param("id")

	data, err := h.store.Load(c.Request.Context(), fileID)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileID+".pdf"))
	c.Data(http.StatusOK, "application/pdf", data)
}
