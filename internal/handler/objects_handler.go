package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"immodok/internal/domain"
	"immodok/internal/port"
)

// ObjectsHandler serves the property registry to clients (e.g. for a
// manual object picker).
type ObjectsHandler struct {
	objects port.ObjectSource
}

// NewObjectsHandler creates a new ObjectsHandler.
func NewObjectsHandler(objects port.ObjectSource) *ObjectsHandler {
	return &ObjectsHandler{objects: objects}
}

// List handles GET /api/v1/objects
// @Summary List property registry
// @Description List all canonical property records
// @Tags objects
// @Produce json
// @Success 200 {object} APIResponse{data=[]domain.ObjectRecord} "Registry records"
// @Router /objects [get]
func (h *ObjectsHandler) List(c *gin.Context) {
	records, err := h.objects.LoadObjects(c.Request.Context())
	if err != nil {
		// Same degrade-to-empty policy as processing: a broken registry
		// file must not take the listing down, only empty it.
		log.Printf("objectsHandler.List: object registry unavailable: %v", err)
		records = nil
	}
	if records == nil {
		records = []domain.ObjectRecord{}
	}
	RespondOK(c, records)
}
