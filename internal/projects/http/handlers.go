package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/projects-api/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/projects-api/internal/projects/domain"
	"github.com/GoSim-25-26J-441/projects-api/internal/projects/validation"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": len(items), "items": items})
}

func (h *Handler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		if h.strictIDs {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		} else {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		}
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c *gin.Context) {
	in, errs := validation.Decode(middleware.Body(c))
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ValidationError", "details": errs})
		return
	}

	p, err := h.svc.Create(c.Request.Context(), in.Title, in.Summary)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, p)
}
