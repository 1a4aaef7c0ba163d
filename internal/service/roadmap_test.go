package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akumaldo/project-manager-suite/internal/model"
)

func roadmapItem(name string) *model.RoadmapItem {
	return &model.RoadmapItem{Name: name, Quarter: "Q1", Year: 2026}
}

func TestRoadmapCreate_Defaults(t *testing.T) {
	db := testDB(t)
	project := newProject(t, db, alice)

	item, err := NewRoadmapService(db).Create(alice, project.ID, roadmapItem("onboarding revamp"))
	require.NoError(t, err)
	assert.Equal(t, model.RoadmapStatusPlanned, item.Status)
	assert.Equal(t, "medium", item.Priority)
	assert.Equal(t, "next", item.Timeframe)
	assert.Equal(t, 0, item.Position)
}

func TestRoadmapCreate_InvalidQuarter(t *testing.T) {
	db := testDB(t)
	project := newProject(t, db, alice)

	item := roadmapItem("x")
	item.Quarter = "Q5"
	_, err := NewRoadmapService(db).Create(alice, project.ID, item)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40001")
}

func TestRoadmapUpdate_InvalidStatus(t *testing.T) {
	db := testDB(t)
	project := newProject(t, db, alice)
	svc := NewRoadmapService(db)

	item, err := svc.Create(alice, project.ID, roadmapItem("x"))
	require.NoError(t, err)

	_, err = svc.Update(alice, project.ID, item.ID, map[string]interface{}{"status": "Someday"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40001")
}

func TestRoadmapCreate_PositionScopedByTimeframe(t *testing.T) {
	db := testDB(t)
	project := newProject(t, db, alice)
	svc := NewRoadmapService(db)

	a, err := svc.Create(alice, project.ID, roadmapItem("a"))
	require.NoError(t, err)
	b, err := svc.Create(alice, project.ID, roadmapItem("b"))
	require.NoError(t, err)

	later := roadmapItem("c")
	later.Timeframe = "later"
	c, err := svc.Create(alice, project.ID, later)
	require.NoError(t, err)

	assert.Equal(t, 0, a.Position)
	assert.Equal(t, 1, b.Position)
	assert.Equal(t, 0, c.Position)
}

func TestRoadmapReorder_MovesTimeframe(t *testing.T) {
	db := testDB(t)
	project := newProject(t, db, alice)
	svc := NewRoadmapService(db)

	a, err := svc.Create(alice, project.ID, roadmapItem("a"))
	require.NoError(t, err)

	items, err := svc.Reorder(alice, project.ID, []string{a.ID}, "now")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "now", items[0].Timeframe)
	assert.Equal(t, 0, items[0].Position)
}

func TestRoadmapReorder_InvalidTimeframe(t *testing.T) {
	db := testDB(t)
	project := newProject(t, db, alice)
	svc := NewRoadmapService(db)

	a, err := svc.Create(alice, project.ID, roadmapItem("a"))
	require.NoError(t, err)

	_, err = svc.Reorder(alice, project.ID, []string{a.ID}, "eventually")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40001")
}

func TestRoadmapUpdate_RejectsMistypedFields(t *testing.T) {
	db := testDB(t)
	project := newProject(t, db, alice)
	svc := NewRoadmapService(db)

	item, err := svc.Create(alice, project.ID, roadmapItem("billing"))
	require.NoError(t, err)

	_, err = svc.Update(alice, project.ID, item.ID, map[string]interface{}{"status": 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40001")

	_, err = svc.Update(alice, project.ID, item.ID, map[string]interface{}{"year": "next year"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40001")

	got, err := svc.Get(alice, project.ID, item.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RoadmapStatusPlanned, got.Status)
	assert.Equal(t, 2026, got.Year)
}
