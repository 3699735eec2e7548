package handler

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"immodok/internal/service"
)

// ProcessHandler handles the document processing endpoint.
type ProcessHandler struct {
	processService service.ProcessService
	maxBytes       int64
}

// NewProcessHandler creates a new ProcessHandler. maxUploadMB bounds
// the accepted payload size; zero disables the limit.
func NewProcessHandler(processService service.ProcessService, maxUploadMB int64) *ProcessHandler {
	return &ProcessHandler{
		processService: processService,
		maxBytes:       maxUploadMB * 1024 * 1024,
	}
}

// Process handles POST /api/v1/process
// @Summary Process a document
// @Description Upload a PDF, extract metadata and resolve the building reference
// @Tags process
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF document"
// @Success 200 {object} domain.ResultRecord "Extraction result"
// @Failure 400 {object} APIResponse "Missing file, non-PDF name, undersized or unreadable payload"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 500 {object} APIResponse "Processing or storage failure"
// @Router /process [post]
func (h *ProcessHandler) Process(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	if !strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		RespondError(c, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "only PDF supported")
		return
	}
	if h.maxBytes > 0 && header.Size > h.maxBytes {
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "READ_FAILED", "reading upload failed")
		return
	}

	result, err := h.processService.Process(c.Request.Context(), service.ProcessInput{
		Filename: header.Filename,
		Data:     data,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
