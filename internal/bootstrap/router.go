package bootstrap

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	httpapi "github.com/GoSim-25-26J-441/projects-api/internal/api/http"
	"github.com/GoSim-25-26J-441/projects-api/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/projects-api/internal/api/http/routes"
	"github.com/GoSim-25-26J-441/projects-api/internal/projects/service"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Logger      *zap.Logger
	Projects    *service.ProjectService
	Profile     httpapi.Profile
	StrictIDs   bool
	CORSOrigins []string
}

func SetGinMode(env string) {
	switch env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}
}

// BuildRouter wires the middleware chain and every route. Middleware order
// matters: request id first so every later log line carries it, the error
// handler before the body steps so it also covers their failures.
func BuildRouter(dep RouterDeps) *gin.Engine {
	log := dep.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(middleware.RequestIDMiddleware(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.ErrorHandler(log))
	r.Use(corsMiddleware(dep.CORSOrigins))
	r.Use(middleware.JSONBody())
	r.Use(middleware.RejectMalformedBody())

	notFound := func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
	}
	r.NoRoute(notFound)
	r.NoMethod(notFound)

	httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Projects).RegisterRoutes(r)
	httpapi.NewInfoHandler(dep.Profile).RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{
		Projects:  dep.Projects,
		StrictIDs: dep.StrictIDs,
	})

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}

	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
	}
	if allowAll {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}
