package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/akumaldo/project-manager-suite/internal/middleware"
	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/service"
)

type CanvasHandler struct {
	canvasService *service.CanvasService
}

func NewCanvasHandler(canvasService *service.CanvasService) *CanvasHandler {
	return &CanvasHandler{canvasService: canvasService}
}

type canvasBody struct {
	KeyPartners           *string `json:"key_partners"`
	KeyActivities         *string `json:"key_activities"`
	KeyResources          *string `json:"key_resources"`
	ValuePropositions     *string `json:"value_propositions"`
	CustomerRelationships *string `json:"customer_relationships"`
	Channels              *string `json:"channels"`
	CustomerSegments      *string `json:"customer_segments"`
	CostStructure         *string `json:"cost_structure"`
	RevenueStreams        *string `json:"revenue_streams"`
}

func (b canvasBody) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	set := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}
	set("key_partners", b.KeyPartners)
	set("key_activities", b.KeyActivities)
	set("key_resources", b.KeyResources)
	set("value_propositions", b.ValuePropositions)
	set("customer_relationships", b.CustomerRelationships)
	set("channels", b.Channels)
	set("customer_segments", b.CustomerSegments)
	set("cost_structure", b.CostStructure)
	set("revenue_streams", b.RevenueStreams)
	return fields
}

// GET /projects/:project_id/bmc
func (h *CanvasHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	canvas, err := h.canvasService.Get(userID, c.Param("project_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, canvas)
}

// POST /projects/:project_id/bmc
func (h *CanvasHandler) Create(c *gin.Context) {
	var req canvasBody
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	canvas := &model.Canvas{}
	apply := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	apply(&canvas.KeyPartners, req.KeyPartners)
	apply(&canvas.KeyActivities, req.KeyActivities)
	apply(&canvas.KeyResources, req.KeyResources)
	apply(&canvas.ValuePropositions, req.ValuePropositions)
	apply(&canvas.CustomerRelationships, req.CustomerRelationships)
	apply(&canvas.Channels, req.Channels)
	apply(&canvas.CustomerSegments, req.CustomerSegments)
	apply(&canvas.CostStructure, req.CostStructure)
	apply(&canvas.RevenueStreams, req.RevenueStreams)

	userID := middleware.GetCurrentUserID(c)
	created, err := h.canvasService.Create(userID, c.Param("project_id"), canvas)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, created)
}

// PATCH /projects/:project_id/bmc
func (h *CanvasHandler) Update(c *gin.Context) {
	var req canvasBody
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	canvas, err := h.canvasService.Update(userID, c.Param("project_id"), req.fields())
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, canvas)
}

// GET /projects/:project_id/bmc-items
func (h *CanvasHandler) ListItems(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	items, err := h.canvasService.ListItems(userID, c.Param("project_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}

// POST /projects/:project_id/bmc-items
func (h *CanvasHandler) CreateItem(c *gin.Context) {
	var req struct {
		Block    string `json:"block" binding:"required"`
		Content  string `json:"content" binding:"required,max=1000"`
		Position *int   `json:"position"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	item, err := h.canvasService.CreateItem(userID, c.Param("project_id"), req.Block, req.Content, req.Position)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, item)
}

// PATCH /projects/:project_id/bmc-items/:item_id
func (h *CanvasHandler) UpdateItem(c *gin.Context) {
	var req struct {
		Block    *string `json:"block"`
		Content  *string `json:"content"`
		Position *int    `json:"position"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Block != nil {
		fields["block"] = *req.Block
	}
	if req.Content != nil {
		if *req.Content == "" || len(*req.Content) > 1000 {
			BadRequest(c, 40001, "content must be 1-1000 characters")
			return
		}
		fields["content"] = *req.Content
	}
	if req.Position != nil {
		fields["position"] = *req.Position
	}

	userID := middleware.GetCurrentUserID(c)
	item, err := h.canvasService.UpdateItem(userID, c.Param("project_id"), c.Param("item_id"), fields)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, item)
}

// DELETE /projects/:project_id/bmc-items/:item_id
func (h *CanvasHandler) DeleteItem(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.canvasService.DeleteItem(userID, c.Param("project_id"), c.Param("item_id")); err != nil {
		Fail(c, err)
		return
	}
	NoContent(c)
}

// PUT /projects/:project_id/bmc-items/reorder
func (h *CanvasHandler) ReorderItems(c *gin.Context) {
	var req struct {
		ItemIDs  []string `json:"item_ids"`
		NewBlock string   `json:"new_block"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	items, err := h.canvasService.ReorderItems(userID, c.Param("project_id"), req.ItemIDs, req.NewBlock)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}
