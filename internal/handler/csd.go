package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/akumaldo/project-manager-suite/internal/middleware"
	"github.com/akumaldo/project-manager-suite/internal/service"
)

type CSDHandler struct {
	csdService *service.CSDService
}

func NewCSDHandler(csdService *service.CSDService) *CSDHandler {
	return &CSDHandler{csdService: csdService}
}

// GET /projects/:project_id/csd
func (h *CSDHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	items, err := h.csdService.List(userID, c.Param("project_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}

// POST /projects/:project_id/csd
func (h *CSDHandler) Create(c *gin.Context) {
	var req struct {
		Category string `json:"category" binding:"required"`
		Text     string `json:"text" binding:"required,max=500"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	item, err := h.csdService.Create(userID, c.Param("project_id"), req.Category, req.Text)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, item)
}

// GET /projects/:project_id/csd/:item_id
func (h *CSDHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	item, err := h.csdService.Get(userID, c.Param("project_id"), c.Param("item_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, item)
}

// PATCH /projects/:project_id/csd/:item_id
func (h *CSDHandler) Update(c *gin.Context) {
	var req struct {
		Category *string `json:"category"`
		Text     *string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Text != nil {
		if *req.Text == "" || len(*req.Text) > 500 {
			BadRequest(c, 40001, "text must be 1-500 characters")
			return
		}
		fields["text"] = *req.Text
	}

	userID := middleware.GetCurrentUserID(c)
	item, err := h.csdService.Update(userID, c.Param("project_id"), c.Param("item_id"), fields)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, item)
}

// DELETE /projects/:project_id/csd/:item_id
func (h *CSDHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.csdService.Delete(userID, c.Param("project_id"), c.Param("item_id")); err != nil {
		Fail(c, err)
		return
	}
	NoContent(c)
}

// PUT /projects/:project_id/csd/reorder
func (h *CSDHandler) Reorder(c *gin.Context) {
	var req struct {
		ItemIDs     []string `json:"item_ids"`
		NewCategory string   `json:"new_category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	items, err := h.csdService.Reorder(userID, c.Param("project_id"), req.ItemIDs, req.NewCategory)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, items)
}
