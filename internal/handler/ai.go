package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/akumaldo/project-manager-suite/internal/ai"
	"github.com/akumaldo/project-manager-suite/internal/middleware"
	"github.com/akumaldo/project-manager-suite/internal/service"
)

type AIHandler struct {
	aiClient       *ai.Client
	projectService *service.ProjectService
	csdService     *service.CSDService
	riceService    *service.RICEService
	roadmapService *service.RoadmapService
}

func NewAIHandler(
	aiClient *ai.Client,
	projectService *service.ProjectService,
	csdService *service.CSDService,
	riceService *service.RICEService,
	roadmapService *service.RoadmapService,
) *AIHandler {
	return &AIHandler{
		aiClient:       aiClient,
		projectService: projectService,
		csdService:     csdService,
		riceService:    riceService,
		roadmapService: roadmapService,
	}
}

// POST /ai/suggest
//
// One dispatch endpoint for every framework's suggestion flow. The caller
// names the framework via prompt_type; category/section/objective refine the
// prompt where the framework needs it.
func (h *AIHandler) Suggest(c *gin.Context) {
	var req struct {
		PromptType     string `json:"prompt_type" binding:"required"`
		ProjectID      string `json:"project_id" binding:"required"`
		Category       string `json:"category"`
		Section        string `json:"section"`
		Objective      string `json:"objective"`
		ProjectContext string `json:"project_context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, 40001, "invalid request body: "+err.Error())
		return
	}

	userID := middleware.GetCurrentUserID(c)
	project, err := h.projectService.Get(userID, req.ProjectID)
	if err != nil {
		Fail(c, err)
		return
	}

	ctx := c.Request.Context()

	switch req.PromptType {
	case "csd":
		if req.Category == "" {
			BadRequest(c, 40001, "category is required for CSD suggestions")
			return
		}
		existing := []string{}
		items, err := h.csdService.List(userID, req.ProjectID)
		if err != nil {
			Fail(c, err)
			return
		}
		for _, item := range items {
			if item.Category == req.Category {
				existing = append(existing, item.Text)
			}
		}
		suggestions, err := h.aiClient.CSDSuggestions(ctx, project.Name, req.Category, req.ProjectContext, existing)
		if err != nil {
			Fail(c, err)
			return
		}
		Success(c, gin.H{"suggestions": suggestions})

	case "pvb":
		if req.Section == "" {
			BadRequest(c, 40001, "section is required for vision board suggestions")
			return
		}
		suggestions, err := h.aiClient.PVBSuggestions(ctx, project.Name, req.Section, req.ProjectContext)
		if err != nil {
			Fail(c, err)
			return
		}
		Success(c, gin.H{"suggestions": suggestions})

	case "bmc":
		if req.Section == "" {
			BadRequest(c, 40001, "section is required for canvas suggestions")
			return
		}
		suggestions, err := h.aiClient.BMCSuggestions(ctx, project.Name, req.Section, req.ProjectContext)
		if err != nil {
			Fail(c, err)
			return
		}
		Success(c, gin.H{"suggestions": suggestions})

	case "okr":
		var suggestions []string
		var err error
		if req.Objective != "" {
			suggestions, err = h.aiClient.OKRKeyResultSuggestions(ctx, project.Name, req.Objective, req.ProjectContext)
		} else {
			suggestions, err = h.aiClient.OKRObjectiveSuggestions(ctx, project.Name, req.ProjectContext)
		}
		if err != nil {
			Fail(c, err)
			return
		}
		Success(c, gin.H{"suggestions": suggestions})

	case "persona":
		if req.Category == "" {
			BadRequest(c, 40001, "category is required for persona suggestions")
			return
		}
		suggestions, err := h.aiClient.PersonaDetailSuggestions(ctx, project.Name, req.Category, req.ProjectContext)
		if err != nil {
			Fail(c, err)
			return
		}
		Success(c, gin.H{"suggestions": suggestions})

	case "roadmap":
		existing, err := h.roadmapService.ExistingNames(userID, req.ProjectID)
		if err != nil {
			Fail(c, err)
			return
		}
		suggestions, err := h.aiClient.RoadmapSuggestions(ctx, project.Name, req.Category, req.ProjectContext, existing)
		if err != nil {
			// roadmap suggestions degrade to placeholders instead of failing
			suggestions = roadmapFallback(project.Name)
		}
		Success(c, gin.H{"suggestions": suggestions})

	case "rice":
		existing, err := h.riceService.ExistingNames(userID, req.ProjectID)
		if err != nil {
			Fail(c, err)
			return
		}
		features, err := h.aiClient.RICESuggestions(ctx, project.Name, req.ProjectContext, existing)
		if err != nil {
			Fail(c, err)
			return
		}
		Success(c, gin.H{"suggestions": riceDraftList(features)})

	default:
		BadRequest(c, 40001, "unknown prompt_type "+req.PromptType)
	}
}

func roadmapFallback(projectName string) []string {
	return []string{
		"Define MVP scope for " + projectName,
		"Run discovery interviews with early users",
		"Ship first usable release",
		"Collect feedback and iterate on core flows",
		"Plan next quarter around validated learnings",
	}
}
