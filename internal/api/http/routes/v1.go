package routes

import (
	"github.com/gin-gonic/gin"

	projecthttp "github.com/GoSim-25-26J-441/projects-api/internal/projects/http"
	"github.com/GoSim-25-26J-441/projects-api/internal/projects/service"
)

type V1Deps struct {
	Projects  *service.ProjectService
	StrictIDs bool
}

// RegisterV1 mounts the resource routes. Paths are unversioned so that
// /projects stays where existing clients expect it.
func RegisterV1(r gin.IRouter, dep V1Deps) {
	projectsGroup := r.Group("/projects")
	projecthttp.New(dep.Projects, dep.StrictIDs).Register(projectsGroup)
}
