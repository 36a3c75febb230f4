package http

import (
	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/projects-api/internal/projects/service"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
	// strictIDs answers a non-numeric :id with 400 instead of 404.
	strictIDs bool
}

func New(svc *service.ProjectService, strictIDs bool) *Handler {
	return &Handler{svc: svc, strictIDs: strictIDs}
}

// Register attaches project routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("", h.create)
	rg.GET("/:id", h.get)
}
