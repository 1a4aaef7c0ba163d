package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/akumaldo/project-manager-suite/internal/middleware"
	"github.com/akumaldo/project-manager-suite/internal/service"
)

type ProjectHandler struct {
	projectService *service.ProjectService
}

func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	projects, err := h.projectService.List(userID)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, projects)
}

// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required,max=100"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	project, err := h.projectService.Create(userID, req.Name)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, project)
}

// GET /projects/:project_id
func (h *ProjectHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	project, err := h.projectService.Get(userID, c.Param("project_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, project)
}

// PATCH /projects/:project_id
func (h *ProjectHandler) Update(c *gin.Context) {
	var req struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		if *req.Name == "" || len(*req.Name) > 100 {
			BadRequest(c, 40001, "name must be 1-100 characters")
			return
		}
		fields["name"] = *req.Name
	}

	userID := middleware.GetCurrentUserID(c)
	project, err := h.projectService.Update(userID, c.Param("project_id"), fields)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, project)
}

// DELETE /projects/:project_id
func (h *ProjectHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.projectService.Delete(userID, c.Param("project_id")); err != nil {
		Fail(c, err)
		return
	}
	NoContent(c)
}
