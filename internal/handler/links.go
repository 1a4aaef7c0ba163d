package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/akumaldo/project-manager-suite/internal/middleware"
	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/service"
)

type LinkHandler struct {
	linkService *service.LinkService
}

func NewLinkHandler(linkService *service.LinkService) *LinkHandler {
	return &LinkHandler{linkService: linkService}
}

// POST /links
func (h *LinkHandler) Create(c *gin.Context) {
	var req struct {
		ProjectID      string `json:"project_id" binding:"required"`
		SourceItemID   string `json:"source_item_id" binding:"required"`
		SourceItemType string `json:"source_item_type" binding:"required"`
		TargetItemID   string `json:"target_item_id" binding:"required"`
		TargetItemType string `json:"target_item_type" binding:"required"`
		LinkType       string `json:"link_type"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	link := &model.FrameworkLink{
		ProjectID:      req.ProjectID,
		SourceItemID:   req.SourceItemID,
		SourceItemType: req.SourceItemType,
		TargetItemID:   req.TargetItemID,
		TargetItemType: req.TargetItemType,
		LinkType:       req.LinkType,
	}

	userID := middleware.GetCurrentUserID(c)
	created, err := h.linkService.Create(userID, link)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, created)
}

// DELETE /links/:link_id
func (h *LinkHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.linkService.Delete(userID, c.Param("link_id")); err != nil {
		Fail(c, err)
		return
	}
	NoContent(c)
}

// GET /items/:item_type/:item_id
func (h *LinkHandler) GetItem(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	item, err := h.linkService.GetItem(userID, c.Param("item_type"), c.Param("item_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, item)
}

// GET /items/:item_type/:item_id/links
func (h *LinkHandler) LinkedItems(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	items, err := h.linkService.LinkedItems(userID, c.Param("item_type"), c.Param("item_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}
