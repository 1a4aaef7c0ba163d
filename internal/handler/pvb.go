package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/akumaldo/project-manager-suite/internal/middleware"
	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/service"
)

type VisionBoardHandler struct {
	pvbService *service.VisionBoardService
}

func NewVisionBoardHandler(pvbService *service.VisionBoardService) *VisionBoardHandler {
	return &VisionBoardHandler{pvbService: pvbService}
}

type visionBoardBody struct {
	Vision          *string `json:"vision"`
	TargetCustomers *string `json:"target_customers"`
	CustomerNeeds   *string `json:"customer_needs"`
	ProductFeatures *string `json:"product_features"`
	BusinessGoals   *string `json:"business_goals"`
}

func (b visionBoardBody) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if b.Vision != nil {
		fields["vision"] = *b.Vision
	}
	if b.TargetCustomers != nil {
		fields["target_customers"] = *b.TargetCustomers
	}
	if b.CustomerNeeds != nil {
		fields["customer_needs"] = *b.CustomerNeeds
	}
	if b.ProductFeatures != nil {
		fields["product_features"] = *b.ProductFeatures
	}
	if b.BusinessGoals != nil {
		fields["business_goals"] = *b.BusinessGoals
	}
	return fields
}

// GET /projects/:project_id/pvb
func (h *VisionBoardHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	board, err := h.pvbService.Get(userID, c.Param("project_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, board)
}

// POST /projects/:project_id/pvb
func (h *VisionBoardHandler) Create(c *gin.Context) {
	var req visionBoardBody
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	board := &model.VisionBoard{}
	if req.Vision != nil {
		board.Vision = *req.Vision
	}
	if req.TargetCustomers != nil {
		board.TargetCustomers = *req.TargetCustomers
	}
	if req.CustomerNeeds != nil {
		board.CustomerNeeds = *req.CustomerNeeds
	}
	if req.ProductFeatures != nil {
		board.ProductFeatures = *req.ProductFeatures
	}
	if req.BusinessGoals != nil {
		board.BusinessGoals = *req.BusinessGoals
	}

	userID := middleware.GetCurrentUserID(c)
	created, err := h.pvbService.Create(userID, c.Param("project_id"), board)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, created)
}

// PATCH /projects/:project_id/pvb
func (h *VisionBoardHandler) Update(c *gin.Context) {
	var req visionBoardBody
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	board, err := h.pvbService.Update(userID, c.Param("project_id"), req.fields())
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, board)
}
