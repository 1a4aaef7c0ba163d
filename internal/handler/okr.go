package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/akumaldo/project-manager-suite/internal/middleware"
	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/service"
)

type OKRHandler struct {
	okrService *service.OKRService
}

func NewOKRHandler(okrService *service.OKRService) *OKRHandler {
	return &OKRHandler{okrService: okrService}
}

// GET /projects/:project_id/okr
func (h *OKRHandler) ListObjectives(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	objectives, err := h.okrService.ListObjectives(userID, c.Param("project_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, objectives)
}

// POST /projects/:project_id/okr/objectives
func (h *OKRHandler) CreateObjective(c *gin.Context) {
	var req struct {
		Title       string `json:"title" binding:"required,max=200"`
		Description string `json:"description" binding:"max=500"`
		Status      string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	objective := &model.Objective{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}

	userID := middleware.GetCurrentUserID(c)
	created, err := h.okrService.CreateObjective(userID, c.Param("project_id"), objective)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, created)
}

// PATCH /projects/:project_id/okr/objectives/:objective_id
func (h *OKRHandler) UpdateObjective(c *gin.Context) {
	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Status      *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		if *req.Title == "" || len(*req.Title) > 200 {
			BadRequest(c, 40001, "title must be 1-200 characters")
			return
		}
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}

	userID := middleware.GetCurrentUserID(c)
	objective, err := h.okrService.UpdateObjective(userID, c.Param("project_id"), c.Param("objective_id"), fields)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, objective)
}

// DELETE /projects/:project_id/okr/objectives/:objective_id
func (h *OKRHandler) DeleteObjective(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.okrService.DeleteObjective(userID, c.Param("project_id"), c.Param("objective_id")); err != nil {
		Fail(c, err)
		return
	}
	NoContent(c)
}

// POST /projects/:project_id/okr/objectives/:objective_id/key-results
func (h *OKRHandler) CreateKeyResult(c *gin.Context) {
	var req struct {
		Title        string  `json:"title" binding:"required,max=200"`
		Description  string  `json:"description" binding:"max=500"`
		CurrentValue float64 `json:"current_value"`
		TargetValue  float64 `json:"target_value" binding:"required"`
		Status       string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	keyResult := &model.KeyResult{
		Title:        req.Title,
		Description:  req.Description,
		CurrentValue: req.CurrentValue,
		TargetValue:  req.TargetValue,
		Status:       req.Status,
	}

	userID := middleware.GetCurrentUserID(c)
	created, err := h.okrService.CreateKeyResult(userID, c.Param("project_id"), c.Param("objective_id"), keyResult)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, created)
}

// PATCH /projects/:project_id/okr/key-results/:key_result_id
func (h *OKRHandler) UpdateKeyResult(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	allowed := map[string]bool{
		"title": true, "description": true,
		"current_value": true, "target_value": true, "status": true,
	}
	fields := map[string]interface{}{}
	for key, value := range req {
		if allowed[key] {
			fields[key] = value
		}
	}

	userID := middleware.GetCurrentUserID(c)
	keyResult, err := h.okrService.UpdateKeyResult(userID, c.Param("project_id"), c.Param("key_result_id"), fields)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, keyResult)
}

// DELETE /projects/:project_id/okr/key-results/:key_result_id
func (h *OKRHandler) DeleteKeyResult(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.okrService.DeleteKeyResult(userID, c.Param("project_id"), c.Param("key_result_id")); err != nil {
		Fail(c, err)
		return
	}
	NoContent(c)
}
