package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/akumaldo/project-manager-suite/internal/ai"
	"github.com/akumaldo/project-manager-suite/internal/config"
	"github.com/akumaldo/project-manager-suite/internal/handler"
	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/report"
	"github.com/akumaldo/project-manager-suite/internal/router"
	"github.com/akumaldo/project-manager-suite/internal/service"
	"github.com/akumaldo/project-manager-suite/internal/storage"
)

func main() {
	// Load config
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(
		&model.Project{},
		&model.CSDItem{},
		&model.VisionBoard{},
		&model.Canvas{},
		&model.CanvasItem{},
		&model.RICEItem{},
		&model.RoadmapItem{},
		&model.Objective{},
		&model.KeyResult{},
		&model.Persona{},
		&model.PersonaDetail{},
		&model.FrameworkLink{},
	); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	// Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Object storage for persona photos
	uploader, err := storage.NewMinioUploader(cfg.Storage)
	if err != nil {
		log.Fatalf("init storage: %v", err)
	}
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := uploader.EnsureBucket(ctx); err != nil {
			log.Printf("warn: storage bucket not ready: %v", err)
		}
		cancel()
	}

	// AI client
	aiClient := ai.NewClient(cfg.AI)

	// Services
	projectService := service.NewProjectService(db)
	csdService := service.NewCSDService(db)
	pvbService := service.NewVisionBoardService(db)
	canvasService := service.NewCanvasService(db)
	riceService := service.NewRICEService(db)
	roadmapService := service.NewRoadmapService(db)
	okrService := service.NewOKRService(db)
	personaService := service.NewPersonaService(db)
	linkService := service.NewLinkService(db)
	reportService := report.NewService(db)

	// Handlers
	projectHandler := handler.NewProjectHandler(projectService)
	csdHandler := handler.NewCSDHandler(csdService)
	pvbHandler := handler.NewVisionBoardHandler(pvbService)
	canvasHandler := handler.NewCanvasHandler(canvasService)
	riceHandler := handler.NewRICEHandler(riceService, projectService, aiClient)
	roadmapHandler := handler.NewRoadmapHandler(roadmapService)
	okrHandler := handler.NewOKRHandler(okrService)
	personaHandler := handler.NewPersonaHandler(personaService)
	linkHandler := handler.NewLinkHandler(linkService)
	aiHandler := handler.NewAIHandler(aiClient, projectService, csdService, riceService, roadmapService)
	reportHandler := handler.NewReportHandler(reportService, time.Duration(cfg.Report.TimeoutSeconds)*time.Second)
	uploadHandler := handler.NewUploadHandler(uploader)

	// Gin engine
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Setup routes
	router.Setup(r, router.Deps{
		JWTSecret:      cfg.JWT.Secret,
		Redis:          rdb,
		AIRatePerMin:   cfg.AI.RatePerMinute,
		ProjectHandler: projectHandler,
		CSDHandler:     csdHandler,
		PVBHandler:     pvbHandler,
		CanvasHandler:  canvasHandler,
		RICEHandler:    riceHandler,
		RoadmapHandler: roadmapHandler,
		OKRHandler:     okrHandler,
		PersonaHandler: personaHandler,
		LinkHandler:    linkHandler,
		AIHandler:      aiHandler,
		ReportHandler:  reportHandler,
		UploadHandler:  uploadHandler,
	})

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server run: %v", err)
	}
}
