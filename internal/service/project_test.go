package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/store"
)

func TestProjectCreate_StampsOwner(t *testing.T) {
	db := testDB(t)
	svc := NewProjectService(db)

	project, err := svc.Create(alice, "My Product")
	require.NoError(t, err)
	assert.NotEmpty(t, project.ID)
	assert.Equal(t, alice, project.UserID)
}

func TestProjectList_ScopedToCaller(t *testing.T) {
	db := testDB(t)
	svc := NewProjectService(db)

	_, err := svc.Create(alice, "Mine")
	require.NoError(t, err)
	_, err = svc.Create(bob, "Theirs")
	require.NoError(t, err)

	projects, err := svc.List(alice)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "Mine", projects[0].Name)
}

func TestProjectGet_CrossTenantIsNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewProjectService(db)
	project := newProject(t, db, alice)

	_, err := svc.Get(bob, project.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40401")
}

func TestProjectUpdate_CrossTenantIsNotFound(t *testing.T) {
	db := testDB(t)
	svc := NewProjectService(db)
	project := newProject(t, db, alice)

	_, err := svc.Update(bob, project.ID, map[string]interface{}{"name": "Hijacked"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40401")

	got, err := svc.Get(alice, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "Discovery App", got.Name)
}

func TestProjectDelete_CascadesAllFrameworks(t *testing.T) {
	db := testDB(t)
	project := newProject(t, db, alice)

	_, err := NewCSDService(db).Create(alice, project.ID, model.CSDCategoryDoubt, "will anyone pay")
	require.NoError(t, err)
	_, err = NewVisionBoardService(db).Create(alice, project.ID, &model.VisionBoard{Vision: "v"})
	require.NoError(t, err)
	objective, err := NewOKRService(db).CreateObjective(alice, project.ID, &model.Objective{Title: "Grow"})
	require.NoError(t, err)
	_, err = NewOKRService(db).CreateKeyResult(alice, project.ID, objective.ID, &model.KeyResult{Title: "MAU", TargetValue: 100})
	require.NoError(t, err)
	persona, err := NewPersonaService(db).Create(alice, project.ID, &model.Persona{Name: "Ana"})
	require.NoError(t, err)
	_, err = NewPersonaService(db).CreateDetail(alice, persona.ID, model.PersonaDetailGoal, "ship fast")
	require.NoError(t, err)

	require.NoError(t, NewProjectService(db).Delete(alice, project.ID))

	for table, count := range map[string]int64{
		"projects": 0, "csd_items": 0, "product_vision_boards": 0,
		"objectives": 0, "key_results": 0, "personas": 0, "persona_details": 0,
	} {
		var got int64
		require.NoError(t, db.Table(table).Count(&got).Error)
		assert.Equal(t, count, got, table)
	}
}

func TestProjectDelete_CrossTenantLeavesRows(t *testing.T) {
	db := testDB(t)
	project := newProject(t, db, alice)

	err := NewProjectService(db).Delete(bob, project.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40401")

	exists, err := store.Exists[model.Project](db, store.Filter{"id": project.ID})
	require.NoError(t, err)
	assert.True(t, exists)
}
