package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/akumaldo/project-manager-suite/internal/middleware"
	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/service"
)

type RoadmapHandler struct {
	roadmapService *service.RoadmapService
}

func NewRoadmapHandler(roadmapService *service.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{roadmapService: roadmapService}
}

// GET /projects/:project_id/roadmap
func (h *RoadmapHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	items, err := h.roadmapService.List(userID, c.Param("project_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}

// POST /projects/:project_id/roadmap
func (h *RoadmapHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required,max=100"`
		Description string `json:"description" binding:"max=500"`
		Quarter     string `json:"quarter" binding:"required"`
		Year        int    `json:"year" binding:"required"`
		Status      string `json:"status"`
		Priority    string `json:"priority"`
		Timeframe   string `json:"timeframe"`
		Content     string `json:"content" binding:"max=500"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	item := &model.RoadmapItem{
		Name:        req.Name,
		Description: req.Description,
		Quarter:     req.Quarter,
		Year:        req.Year,
		Status:      req.Status,
		Priority:    req.Priority,
		Timeframe:   req.Timeframe,
		Content:     req.Content,
	}

	userID := middleware.GetCurrentUserID(c)
	created, err := h.roadmapService.Create(userID, c.Param("project_id"), item)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, created)
}

// GET /projects/:project_id/roadmap/:item_id
func (h *RoadmapHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	item, err := h.roadmapService.Get(userID, c.Param("project_id"), c.Param("item_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, item)
}

// PATCH /projects/:project_id/roadmap/:item_id
func (h *RoadmapHandler) Update(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	allowed := map[string]bool{
		"name": true, "description": true, "quarter": true, "year": true,
		"status": true, "priority": true, "timeframe": true, "content": true,
		"start_date": true, "end_date": true, "position": true,
	}
	fields := map[string]interface{}{}
	for key, value := range req {
		if allowed[key] {
			fields[key] = value
		}
	}

	userID := middleware.GetCurrentUserID(c)
	item, err := h.roadmapService.Update(userID, c.Param("project_id"), c.Param("item_id"), fields)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, item)
}

// DELETE /projects/:project_id/roadmap/:item_id
func (h *RoadmapHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.roadmapService.Delete(userID, c.Param("project_id"), c.Param("item_id")); err != nil {
		Fail(c, err)
		return
	}
	NoContent(c)
}

// PUT /projects/:project_id/roadmap/reorder
func (h *RoadmapHandler) Reorder(c *gin.Context) {
	var req struct {
		ItemIDs      []string `json:"item_ids"`
		NewTimeframe string   `json:"new_timeframe"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	items, err := h.roadmapService.Reorder(userID, c.Param("project_id"), req.ItemIDs, req.NewTimeframe)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}
