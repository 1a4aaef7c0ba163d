package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/akumaldo/project-manager-suite/internal/middleware"
	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/service"
)

type PersonaHandler struct {
	personaService *service.PersonaService
}

func NewPersonaHandler(personaService *service.PersonaService) *PersonaHandler {
	return &PersonaHandler{personaService: personaService}
}

// GET /projects/:project_id/personas
func (h *PersonaHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	personas, err := h.personaService.List(userID, c.Param("project_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, personas)
}

// POST /projects/:project_id/personas
func (h *PersonaHandler) Create(c *gin.Context) {
	var req struct {
		Name         string `json:"name" binding:"required,max=100"`
		PhotoURL     string `json:"photo_url" binding:"max=500"`
		Quote        string `json:"quote"`
		Demographics string `json:"demographics"`
		Bio          string `json:"bio"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	persona := &model.Persona{
		Name:         req.Name,
		PhotoURL:     req.PhotoURL,
		Quote:        req.Quote,
		Demographics: req.Demographics,
		Bio:          req.Bio,
	}

	userID := middleware.GetCurrentUserID(c)
	created, err := h.personaService.Create(userID, c.Param("project_id"), persona)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, created)
}

// GET /projects/:project_id/personas/:persona_id
func (h *PersonaHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	persona, err := h.personaService.Get(userID, c.Param("project_id"), c.Param("persona_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, persona)
}

// PATCH /projects/:project_id/personas/:persona_id
func (h *PersonaHandler) Update(c *gin.Context) {
	var req struct {
		Name         *string `json:"name"`
		PhotoURL     *string `json:"photo_url"`
		Quote        *string `json:"quote"`
		Demographics *string `json:"demographics"`
		Bio          *string `json:"bio"`
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
	if req.PhotoURL != nil {
		fields["photo_url"] = *req.PhotoURL
	}
	if req.Quote != nil {
		fields["quote"] = *req.Quote
	}
	if req.Demographics != nil {
		fields["demographics"] = *req.Demographics
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}

	userID := middleware.GetCurrentUserID(c)
	persona, err := h.personaService.Update(userID, c.Param("project_id"), c.Param("persona_id"), fields)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, persona)
}

// DELETE /projects/:project_id/personas/:persona_id
func (h *PersonaHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.personaService.Delete(userID, c.Param("project_id"), c.Param("persona_id")); err != nil {
		Fail(c, err)
		return
	}
	NoContent(c)
}

// GET /personas/:persona_id/details
func (h *PersonaHandler) ListDetails(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	details, err := h.personaService.ListDetails(userID, c.Param("persona_id"))
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, details)
}

// POST /personas/:persona_id/details
func (h *PersonaHandler) CreateDetail(c *gin.Context) {
	var req struct {
		Category string `json:"category" binding:"required"`
		Content  string `json:"content" binding:"required,max=500"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	detail, err := h.personaService.CreateDetail(userID, c.Param("persona_id"), req.Category, req.Content)
	if err != nil {
		Fail(c, err)
		return
	}
	Created(c, detail)
}

// PATCH /personas/:persona_id/details/:detail_id
func (h *PersonaHandler) UpdateDetail(c *gin.Context) {
	var req struct {
		Category *string `json:"category"`
		Content  *string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Content != nil {
		if *req.Content == "" || len(*req.Content) > 500 {
			BadRequest(c, 40001, "content must be 1-500 characters")
			return
		}
		fields["content"] = *req.Content
	}

	userID := middleware.GetCurrentUserID(c)
	detail, err := h.personaService.UpdateDetail(userID, c.Param("persona_id"), c.Param("detail_id"), fields)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, detail)
}

// DELETE /personas/:persona_id/details/:detail_id
func (h *PersonaHandler) DeleteDetail(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	if err := h.personaService.DeleteDetail(userID, c.Param("persona_id"), c.Param("detail_id")); err != nil {
		Fail(c, err)
		return
	}
	NoContent(c)
}

// PUT /personas/:persona_id/details/reorder
func (h *PersonaHandler) ReorderDetails(c *gin.Context) {
	var req struct {
		DetailIDs   []string `json:"detail_ids"`
		NewCategory string   `json:"new_category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	details, err := h.personaService.ReorderDetails(userID, c.Param("persona_id"), req.DetailIDs, req.NewCategory)
	if err != nil {
		Fail(c, err)
		return
	}
	Success(c, details)
}
