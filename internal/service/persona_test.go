package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/store"
)

func TestPersonaDetails_AppendWithinCategory(t *testing.T) {
	db := testDB(t)
	project := newProject(t, db, alice)
	svc := NewPersonaService(db)

	persona, err := svc.Create(alice, project.ID, &model.Persona{Name: "Ana"})
	require.NoError(t, err)

	a, err := svc.CreateDetail(alice, persona.ID, model.PersonaDetailGoal, "first")
	require.NoError(t, err)
	b, err := svc.CreateDetail(alice, persona.ID, model.PersonaDetailGoal, "second")
	require.NoError(t, err)
	pain, err := svc.CreateDetail(alice, persona.ID, model.PersonaDetailPainPoint, "own lane")
	require.NoError(t, err)

	assert.Equal(t, 0, a.OrderIndex)
	assert.Equal(t, 1, b.OrderIndex)
	assert.Equal(t, 0, pain.OrderIndex)
}

func TestPersonaDetails_InvalidCategory(t *testing.T) {
	db := testDB(t)
	project := newProject(t, db, alice)
	svc := NewPersonaService(db)

	persona, err := svc.Create(alice, project.ID, &model.Persona{Name: "Ana"})
	require.NoError(t, err)

	_, err = svc.CreateDetail(alice, persona.ID, "Hobby", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40001")
}

func TestPersonaDetails_CrossTenantPersonaIsNotFound(t *testing.T) {
	db := testDB(t)
	project := newProject(t, db, alice)
	svc := NewPersonaService(db)

	persona, err := svc.Create(alice, project.ID, &model.Persona{Name: "Ana"})
	require.NoError(t, err)

	_, err = svc.ListDetails(bob, persona.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "40401")
}

func TestPersonaDelete_CascadesDetails(t *testing.T) {
	db := testDB(t)
	project := newProject(t, db, alice)
	svc := NewPersonaService(db)

	persona, err := svc.Create(alice, project.ID, &model.Persona{Name: "Ana"})
	require.NoError(t, err)
	detail, err := svc.CreateDetail(alice, persona.ID, model.PersonaDetailNeed, "offline mode")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(alice, project.ID, persona.ID))

	exists, err := store.Exists[model.PersonaDetail](db, store.Filter{"id": detail.ID})
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPersonaDetails_ReorderWithCategoryMove(t *testing.T) {
	db := testDB(t)
	project := newProject(t, db, alice)
	svc := NewPersonaService(db)

	persona, err := svc.Create(alice, project.ID, &model.Persona{Name: "Ana"})
	require.NoError(t, err)
	a, _ := svc.CreateDetail(alice, persona.ID, model.PersonaDetailGoal, "a")
	b, _ := svc.CreateDetail(alice, persona.ID, model.PersonaDetailGoal, "b")

	details, err := svc.ReorderDetails(alice, persona.ID, []string{b.ID, a.ID}, model.PersonaDetailMotivation)
	require.NoError(t, err)
	require.Len(t, details, 2)
	for _, detail := range details {
		assert.Equal(t, model.PersonaDetailMotivation, detail.Category)
	}
	assert.Equal(t, "b", details[0].Content)
	assert.Equal(t, "a", details[1].Content)
}
