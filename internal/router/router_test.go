package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/akumaldo/project-manager-suite/internal/ai"
	"github.com/akumaldo/project-manager-suite/internal/config"
	"github.com/akumaldo/project-manager-suite/internal/handler"
	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/report"
	"github.com/akumaldo/project-manager-suite/internal/service"
	"github.com/akumaldo/project-manager-suite/pkg/jwt"
)

const testSecret = "router-test-secret"

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// completionServer mimics an OpenAI-compatible chat endpoint that always
// answers with the given content.
func completionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testEngine(t *testing.T, aiBaseURL string, aiRatePerMin int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
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
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	aiClient := ai.NewClient(config.AIConfig{
		BaseURL:        aiBaseURL,
		APIKey:         "test-key",
		Model:          "test-model",
		TimeoutSeconds: 5,
	})

	projectService := service.NewProjectService(db)
	csdService := service.NewCSDService(db)
	riceService := service.NewRICEService(db)
	roadmapService := service.NewRoadmapService(db)

	r := gin.New()
	Setup(r, Deps{
		JWTSecret:      testSecret,
		Redis:          rdb,
		AIRatePerMin:   aiRatePerMin,
		ProjectHandler: handler.NewProjectHandler(projectService),
		CSDHandler:     handler.NewCSDHandler(csdService),
		PVBHandler:     handler.NewVisionBoardHandler(service.NewVisionBoardService(db)),
		CanvasHandler:  handler.NewCanvasHandler(service.NewCanvasService(db)),
		RICEHandler:    handler.NewRICEHandler(riceService, projectService, aiClient),
		RoadmapHandler: handler.NewRoadmapHandler(roadmapService),
		OKRHandler:     handler.NewOKRHandler(service.NewOKRService(db)),
		PersonaHandler: handler.NewPersonaHandler(service.NewPersonaService(db)),
		LinkHandler:    handler.NewLinkHandler(service.NewLinkService(db)),
		AIHandler:      handler.NewAIHandler(aiClient, projectService, csdService, riceService, roadmapService),
		ReportHandler:  handler.NewReportHandler(report.NewService(db), 30*time.Second),
		UploadHandler:  handler.NewUploadHandler(nil),
	})
	return r
}

func token(t *testing.T, userID string) string {
	t.Helper()
	tok, err := jwt.GenerateToken(testSecret, userID, userID+"@example.com", "user", time.Hour)
	require.NoError(t, err)
	return tok
}

func do(t *testing.T, r *gin.Engine, method, path, bearer string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestHealth(t *testing.T) {
	r := testEngine(t, "http://localhost:0", 0)
	w, _ := do(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired(t *testing.T) {
	r := testEngine(t, "http://localhost:0", 0)

	w, env := do(t, r, http.MethodGet, "/api/v1/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 40101, env.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/projects", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 40103, env.Code)
}

func TestProjectLifecycle(t *testing.T) {
	r := testEngine(t, "http://localhost:0", 0)
	alice := token(t, "11111111-1111-1111-1111-111111111111")

	w, env := do(t, r, http.MethodPost, "/api/v1/projects", alice, gin.H{"name": "Discovery App"})
	require.Equal(t, http.StatusCreated, w.Code)
	var project model.Project
	require.NoError(t, json.Unmarshal(env.Data, &project))
	assert.Equal(t, "Discovery App", project.Name)

	w, env = do(t, r, http.MethodPatch, "/api/v1/projects/"+project.ID, alice, gin.H{"name": "Renamed"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &project))
	assert.Equal(t, "Renamed", project.Name)

	w, _ = do(t, r, http.MethodDelete, "/api/v1/projects/"+project.ID, alice, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/projects/"+project.ID, alice, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40401, env.Code)
}

func TestTenantIsolation(t *testing.T) {
	r := testEngine(t, "http://localhost:0", 0)
	alice := token(t, "11111111-1111-1111-1111-111111111111")
	bob := token(t, "22222222-2222-2222-2222-222222222222")

	_, env := do(t, r, http.MethodPost, "/api/v1/projects", alice, gin.H{"name": "Private"})
	var project model.Project
	require.NoError(t, json.Unmarshal(env.Data, &project))

	w, env := do(t, r, http.MethodPost, "/api/v1/projects/"+project.ID+"/csd", alice,
		gin.H{"category": "Doubt", "text": "will they pay"})
	require.Equal(t, http.StatusCreated, w.Code)
	var item model.CSDItem
	require.NoError(t, json.Unmarshal(env.Data, &item))

	// another tenant sees neither the project nor its items
	w, env = do(t, r, http.MethodGet, "/api/v1/projects/"+project.ID, bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40401, env.Code)

	w, env = do(t, r, http.MethodGet, "/api/v1/projects/"+project.ID+"/csd/"+item.ID, bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 40401, env.Code)

	w, _ = do(t, r, http.MethodDelete, "/api/v1/projects/"+project.ID+"/csd/"+item.ID, bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/v1/projects/"+project.ID+"/csd/"+item.ID, alice, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAISuggest(t *testing.T) {
	srv := completionServer(t, "- talk to churned users\n- run a pricing survey")
	r := testEngine(t, srv.URL, 0)
	alice := token(t, "11111111-1111-1111-1111-111111111111")

	_, env := do(t, r, http.MethodPost, "/api/v1/projects", alice, gin.H{"name": "Discovery App"})
	var project model.Project
	require.NoError(t, json.Unmarshal(env.Data, &project))

	w, env := do(t, r, http.MethodPost, "/api/v1/ai/suggest", alice, gin.H{
		"prompt_type": "csd",
		"project_id":  project.ID,
		"category":    "Doubt",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var payload struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, []string{"talk to churned users", "run a pricing survey"}, payload.Suggestions)
}

func TestAISuggest_MissingCategory(t *testing.T) {
	srv := completionServer(t, "- unused")
	r := testEngine(t, srv.URL, 0)
	alice := token(t, "11111111-1111-1111-1111-111111111111")

	_, env := do(t, r, http.MethodPost, "/api/v1/projects", alice, gin.H{"name": "Discovery App"})
	var project model.Project
	require.NoError(t, json.Unmarshal(env.Data, &project))

	w, env := do(t, r, http.MethodPost, "/api/v1/ai/suggest", alice, gin.H{
		"prompt_type": "csd",
		"project_id":  project.ID,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 40001, env.Code)
}

func TestAISuggest_RateLimited(t *testing.T) {
	srv := completionServer(t, "- fine")
	r := testEngine(t, srv.URL, 2)
	alice := token(t, "11111111-1111-1111-1111-111111111111")

	_, env := do(t, r, http.MethodPost, "/api/v1/projects", alice, gin.H{"name": "Discovery App"})
	var project model.Project
	require.NoError(t, json.Unmarshal(env.Data, &project))

	body := gin.H{"prompt_type": "okr", "project_id": project.ID}
	for i := 0; i < 2; i++ {
		w, _ := do(t, r, http.MethodPost, "/api/v1/ai/suggest", alice, body)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w, env := do(t, r, http.MethodPost, "/api/v1/ai/suggest", alice, body)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, 42901, env.Code)
}
