package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/akumaldo/project-manager-suite/internal/model"
)

const (
	alice = "11111111-1111-1111-1111-111111111111"
	bob   = "22222222-2222-2222-2222-222222222222"
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
		&model.FrameworkLink{},
	))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func newProject(t *testing.T, db *gorm.DB, userID string) *model.Project {
	t.Helper()
	project, err := NewProjectService(db).Create(userID, "Discovery App")
	require.NoError(t, err)
	return project
}
