package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/akumaldo/project-manager-suite/internal/handler"
	"github.com/akumaldo/project-manager-suite/internal/middleware"
)

type Deps struct {
	JWTSecret      string
	Redis          *redis.Client
	AIRatePerMin   int
	ProjectHandler *handler.ProjectHandler
	CSDHandler     *handler.CSDHandler
	PVBHandler     *handler.VisionBoardHandler
	CanvasHandler  *handler.CanvasHandler
	RICEHandler    *handler.RICEHandler
	RoadmapHandler *handler.RoadmapHandler
	OKRHandler     *handler.OKRHandler
	PersonaHandler *handler.PersonaHandler
	LinkHandler    *handler.LinkHandler
	AIHandler      *handler.AIHandler
	ReportHandler  *handler.ReportHandler
	UploadHandler  *handler.UploadHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(middleware.CORSMiddleware())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "project-manager-suite", "status": "ok"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := r.Group("/api/v1")

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(deps.JWTSecret))
	{
		// Projects
		projects := authed.Group("/projects")
		{
			projects.GET("", deps.ProjectHandler.List)
			projects.POST("", deps.ProjectHandler.Create)
			projects.GET("/:project_id", deps.ProjectHandler.Get)
			projects.PATCH("/:project_id", deps.ProjectHandler.Update)
			projects.DELETE("/:project_id", deps.ProjectHandler.Delete)

			// CSD matrix
			projects.GET("/:project_id/csd", deps.CSDHandler.List)
			projects.POST("/:project_id/csd", deps.CSDHandler.Create)
			projects.PUT("/:project_id/csd/reorder", deps.CSDHandler.Reorder)
			projects.GET("/:project_id/csd/:item_id", deps.CSDHandler.Get)
			projects.PATCH("/:project_id/csd/:item_id", deps.CSDHandler.Update)
			projects.DELETE("/:project_id/csd/:item_id", deps.CSDHandler.Delete)

			// Product Vision Board (singleton per project)
			projects.GET("/:project_id/pvb", deps.PVBHandler.Get)
			projects.POST("/:project_id/pvb", deps.PVBHandler.Create)
			projects.PATCH("/:project_id/pvb", deps.PVBHandler.Update)

			// Business Model Canvas (singleton) and its items
			projects.GET("/:project_id/bmc", deps.CanvasHandler.Get)
			projects.POST("/:project_id/bmc", deps.CanvasHandler.Create)
			projects.PATCH("/:project_id/bmc", deps.CanvasHandler.Update)
			projects.GET("/:project_id/bmc-items", deps.CanvasHandler.ListItems)
			projects.POST("/:project_id/bmc-items", deps.CanvasHandler.CreateItem)
			projects.PUT("/:project_id/bmc-items/reorder", deps.CanvasHandler.ReorderItems)
			projects.PATCH("/:project_id/bmc-items/:item_id", deps.CanvasHandler.UpdateItem)
			projects.DELETE("/:project_id/bmc-items/:item_id", deps.CanvasHandler.DeleteItem)

			// RICE prioritization
			projects.GET("/:project_id/rice", deps.RICEHandler.List)
			projects.POST("/:project_id/rice", deps.RICEHandler.Create)
			projects.GET("/:project_id/rice/:item_id", deps.RICEHandler.Get)
			projects.PATCH("/:project_id/rice/:item_id", deps.RICEHandler.Update)
			projects.DELETE("/:project_id/rice/:item_id", deps.RICEHandler.Delete)

			// Roadmap
			projects.GET("/:project_id/roadmap", deps.RoadmapHandler.List)
			projects.POST("/:project_id/roadmap", deps.RoadmapHandler.Create)
			projects.PUT("/:project_id/roadmap/reorder", deps.RoadmapHandler.Reorder)
			projects.GET("/:project_id/roadmap/:item_id", deps.RoadmapHandler.Get)
			projects.PATCH("/:project_id/roadmap/:item_id", deps.RoadmapHandler.Update)
			projects.DELETE("/:project_id/roadmap/:item_id", deps.RoadmapHandler.Delete)

			// OKRs
			projects.GET("/:project_id/okr", deps.OKRHandler.ListObjectives)
			projects.POST("/:project_id/okr/objectives", deps.OKRHandler.CreateObjective)
			projects.PATCH("/:project_id/okr/objectives/:objective_id", deps.OKRHandler.UpdateObjective)
			projects.DELETE("/:project_id/okr/objectives/:objective_id", deps.OKRHandler.DeleteObjective)
			projects.POST("/:project_id/okr/objectives/:objective_id/key-results", deps.OKRHandler.CreateKeyResult)
			projects.PATCH("/:project_id/okr/key-results/:key_result_id", deps.OKRHandler.UpdateKeyResult)
			projects.DELETE("/:project_id/okr/key-results/:key_result_id", deps.OKRHandler.DeleteKeyResult)

			// Personas
			projects.GET("/:project_id/personas", deps.PersonaHandler.List)
			projects.POST("/:project_id/personas", deps.PersonaHandler.Create)
			projects.GET("/:project_id/personas/:persona_id", deps.PersonaHandler.Get)
			projects.PATCH("/:project_id/personas/:persona_id", deps.PersonaHandler.Update)
			projects.DELETE("/:project_id/personas/:persona_id", deps.PersonaHandler.Delete)
		}

		// Persona details (standalone, keyed by persona)
		personas := authed.Group("/personas")
		{
			personas.GET("/:persona_id/details", deps.PersonaHandler.ListDetails)
			personas.POST("/:persona_id/details", deps.PersonaHandler.CreateDetail)
			personas.PUT("/:persona_id/details/reorder", deps.PersonaHandler.ReorderDetails)
			personas.PATCH("/:persona_id/details/:detail_id", deps.PersonaHandler.UpdateDetail)
			personas.DELETE("/:persona_id/details/:detail_id", deps.PersonaHandler.DeleteDetail)
		}

		// Cross-framework links
		authed.POST("/links", deps.LinkHandler.Create)
		authed.DELETE("/links/:link_id", deps.LinkHandler.Delete)
		authed.GET("/items/:item_type/:item_id", deps.LinkHandler.GetItem)
		authed.GET("/items/:item_type/:item_id/links", deps.LinkHandler.LinkedItems)

		// AI suggestions, rate limited per user
		aiLimit := middleware.RateLimitAI(deps.Redis, deps.AIRatePerMin)
		authed.POST("/ai/suggest", aiLimit, deps.AIHandler.Suggest)
		authed.POST("/projects/:project_id/rice/suggest", aiLimit, deps.RICEHandler.Suggest)

		// PDF report
		authed.POST("/projects/:project_id/report", deps.ReportHandler.Generate)

		// Uploads
		authed.POST("/upload/persona-photo", deps.UploadHandler.PersonaPhoto)
	}
}
