package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// isoMillis matches the ISO-8601 form clients already parse, e.g. 2025-01-02T03:04:05.006Z.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// Profile is what GET /me reports when no name is given.
type Profile struct {
	Name     string
	Job      string
	Location string
}

// InfoHandler serves the static root endpoints.
type InfoHandler struct {
	profile Profile
	now     func() time.Time
}

func NewInfoHandler(profile Profile) *InfoHandler {
	return &InfoHandler{profile: profile, now: time.Now}
}

func (h *InfoHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.welcome)
	r.GET("/time", h.currentTime)
	r.GET("/me", h.me)
}

func (h *InfoHandler) welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "welcome"})
}

func (h *InfoHandler) currentTime(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"now": h.now().UTC().Format(isoMillis)})
}

func (h *InfoHandler) me(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		name = h.profile.Name
	}
	c.JSON(http.StatusOK, gin.H{
		"name":     name,
		"job":      h.profile.Job,
		"location": h.profile.Location,
	})
}
