package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/akumaldo/project-manager-suite/internal/model"
)

const (
	owner    = "11111111-1111-1111-1111-111111111111"
	stranger = "22222222-2222-2222-2222-222222222222"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func seedProject(t *testing.T, db *gorm.DB) *model.Project {
	t.Helper()
	project := &model.Project{UserID: owner, Name: "Discovery App"}
	require.NoError(t, db.Create(project).Error)
	return project
}

func TestAssemble_ProjectNotOwned(t *testing.T) {
	db := testDB(t)
	project := seedProject(t, db)

	_, err := NewService(db).Assemble(stranger, project.ID, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40401")
}

func TestAssemble_SectionFilter(t *testing.T) {
	db := testDB(t)
	project := seedProject(t, db)
	require.NoError(t, db.Create(&model.CSDItem{
		ProjectID: project.ID, UserID: owner, Category: model.CSDCategoryDoubt, Text: "retention",
	}).Error)
	require.NoError(t, db.Create(&model.RICEItem{
		ProjectID: project.ID, UserID: owner, Name: "search",
		ReachScore: 5, ImpactScore: 5, ConfidenceScore: 8, EffortScore: 2, RICEScore: 100,
	}).Error)

	data, err := NewService(db).Assemble(owner, project.ID, []string{SectionCSD})
	require.NoError(t, err)
	assert.True(t, data.HasCSD)
	assert.False(t, data.HasRICE)
	assert.Empty(t, data.RICE)
	require.Len(t, data.CSD[model.CSDCategoryDoubt], 1)
}

func TestAssemble_AllSectionsByDefault(t *testing.T) {
	db := testDB(t)
	project := seedProject(t, db)
	require.NoError(t, db.Create(&model.VisionBoard{
		ProjectID: project.ID, UserID: owner, Vision: "everyone ships faster",
	}).Error)
	objective := &model.Objective{ProjectID: project.ID, UserID: owner, Title: "grow", Status: "In Progress"}
	require.NoError(t, db.Create(objective).Error)
	require.NoError(t, db.Create(&model.KeyResult{
		ObjectiveID: objective.ID, Title: "actives", CurrentValue: 50, TargetValue: 100, Status: "In Progress",
	}).Error)

	data, err := NewService(db).Assemble(owner, project.ID, nil)
	require.NoError(t, err)
	assert.True(t, data.HasPVB)
	assert.True(t, data.HasOKR)
	assert.False(t, data.HasRoadmap)
	require.Len(t, data.Objectives, 1)
	assert.InDelta(t, 50.0, data.Objectives[0].Progress, 0.001)
}

func TestAssemble_SkipsOtherTenantsRows(t *testing.T) {
	db := testDB(t)
	project := seedProject(t, db)
	require.NoError(t, db.Create(&model.CSDItem{
		ProjectID: project.ID, UserID: stranger, Category: model.CSDCategoryDoubt, Text: "planted",
	}).Error)

	data, err := NewService(db).Assemble(owner, project.ID, []string{SectionCSD})
	require.NoError(t, err)
	assert.False(t, data.HasCSD)
}

func TestRenderHTML(t *testing.T) {
	data := &Data{
		Project:     model.Project{Name: "Discovery App"},
		GeneratedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		CSD: map[string][]model.CSDItem{
			model.CSDCategoryDoubt: {{Text: "will churn drop"}},
		},
		RICE: []model.RICEItem{{
			Name: "search", ReachScore: 5, ImpactScore: 5, ConfidenceScore: 5, EffortScore: 2, RICEScore: 62.5,
		}},
		Objectives: []ObjectiveReport{{
			Objective:  model.Objective{Title: "grow"},
			KeyResults: []model.KeyResult{{Title: "actives", CurrentValue: 50, TargetValue: 100, Status: "In Progress"}},
			Progress:   50,
		}},
		HasCSD:  true,
		HasRICE: true,
		HasOKR:  true,
	}

	html, err := RenderHTML(data)
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Discovery App</h1>")
	assert.Contains(t, html, "CSD Matrix")
	assert.Contains(t, html, "will churn drop")
	assert.Contains(t, html, "RICE Prioritization")
	assert.Contains(t, html, "62.50")
	assert.Contains(t, html, "Objectives &amp; Key Results")
	assert.Contains(t, html, "50%")
	assert.NotContains(t, html, "Product Vision Board")
	assert.NotContains(t, html, "Roadmap")
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Discovery_App_Report.pdf", Filename("Discovery App"))
	assert.Equal(t, "v2_beta_Report.pdf", Filename("v2 (beta)!"))
	assert.Equal(t, "Project_Report.pdf", Filename("???"))
	assert.Equal(t, strings.Repeat("a", 50)+"_Report.pdf", Filename(strings.Repeat("a", 80)))
}
