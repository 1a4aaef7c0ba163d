package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/akumaldo/project-manager-suite/internal/ai"
	"github.com/akumaldo/project-manager-suite/internal/middleware"
	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/service"
)

type RICEHandler struct {
	riceService    *service.RICEService
	projectService *service.ProjectService
	aiClient       *ai.Client
}

func NewRICEHandler(riceService *service.RICEService, projectService *service.ProjectService, aiClient *ai.Client) *RICEHandler {
	return &RICEHandler{riceService: riceService, projectService: projectService, aiClient: aiClient}
}

// GET /projects/:project_id/rice
func (h *RICEHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	items, err := h.riceService.List(userID, c.Param("project_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}

// POST /projects/:project_id/rice
func (h *RICEHandler) Create(c *gin.Context) {
	var req struct {
		Name            string `json:"name" binding:"required,max=100"`
		Description     string `json:"description" binding:"max=500"`
		ReachScore      int    `json:"reach_score"`
		ImpactScore     int    `json:"impact_score"`
		ConfidenceScore int    `json:"confidence_score"`
		EffortScore     int    `json:"effort_score"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	item := &model.RICEItem{
		Name:            req.Name,
		Description:     req.Description,
		ReachScore:      req.ReachScore,
		ImpactScore:     req.ImpactScore,
		ConfidenceScore: req.ConfidenceScore,
		EffortScore:     req.EffortScore,
	}

	userID := middleware.GetCurrentUserID(c)
	created, err := h.riceService.Create(userID, c.Param("project_id"), item)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, created)
}

// GET /projects/:project_id/rice/:item_id
func (h *RICEHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	item, err := h.riceService.Get(userID, c.Param("project_id"), c.Param("item_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, item)
}

// PATCH /projects/:project_id/rice/:item_id
func (h *RICEHandler) Update(c *gin.Context) {
	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	allowed := map[string]bool{
		"name": true, "description": true,
		"reach_score": true, "impact_score": true,
		"confidence_score": true, "effort_score": true,
	}
	fields := map[string]interface{}{}
	for key, value := range req {
		if allowed[key] {
			fields[key] = value
		}
	}

	userID := middleware.GetCurrentUserID(c)
	item, err := h.riceService.Update(userID, c.Param("project_id"), c.Param("item_id"), fields)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, item)
}

// DELETE /projects/:project_id/rice/:item_id
func (h *RICEHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.riceService.Delete(userID, c.Param("project_id"), c.Param("item_id")); err != nil {
		Fail(c, err)
		return
	}
	NoContent(c)
}

// POST /projects/:project_id/rice/suggest
//
// Drafts are returned with temporary ids and are not persisted. The client
// saves the ones it keeps through the normal create endpoint.
func (h *RICEHandler) Suggest(c *gin.Context) {
	var req struct {
		ProjectContext string `json:"project_context"`
	}
	_ = c.ShouldBindJSON(&req)

	userID := middleware.GetCurrentUserID(c)
	projectID := c.Param("project_id")

	project, err := h.projectService.Get(userID, projectID)
	if err != nil {
		Fail(c, err)
		return
	}
	existing, err := h.riceService.ExistingNames(userID, projectID)
	if err != nil {
		Fail(c, err)
		return
	}

	features, err := h.aiClient.RICESuggestions(c.Request.Context(), project.Name, req.ProjectContext, existing)
	if err != nil {
		Fail(c, err)
		return
	}

	Success(c, riceDraftList(features))
}

// riceDraftList shapes AI feature drafts for the client. Ids carry a temp-
// prefix so the frontend never mistakes them for persisted rows.
func riceDraftList(features []ai.RICEFeature) []gin.H {
	drafts := make([]gin.H, 0, len(features))
	for i, f := range features {
		effort := f.EffortScore
		if effort < 1 {
			effort = 1
		}
		drafts = append(drafts, gin.H{
			"id":               fmt.Sprintf("temp-%d-%d", time.Now().UnixNano(), i),
			"name":             f.Name,
			"description":      f.Description,
			"reach_score":      f.ReachScore,
			"impact_score":     f.ImpactScore,
			"confidence_score": f.ConfidenceScore,
			"effort_score":     effort,
			"rice_score":       model.RICEScoreOf(f.ReachScore, f.ImpactScore, f.ConfidenceScore, effort),
		})
	}
	return drafts
}
