package service

import (
	"fmt"

	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/store"
	"gorm.io/gorm"
)

type PersonaService struct {
	db *gorm.DB
}

func NewPersonaService(db *gorm.DB) *PersonaService {
	return &PersonaService{db: db}
}

func (s *PersonaService) List(userID, projectID string) ([]model.Persona, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	return store.List[model.Persona](s.db,
		store.Filter{"project_id": projectID, "user_id": userID}, "created_at")
}

func (s *PersonaService) Create(userID, projectID string, persona *model.Persona) (*model.Persona, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	persona.ProjectID = projectID
	persona.UserID = userID
	if err := store.Insert(s.db, persona); err != nil {
		return nil, err
	}
	return persona, nil
}

func (s *PersonaService) Get(userID, projectID, personaID string) (*model.Persona, error) {
	persona, err := store.GetOne[model.Persona](s.db, store.Filter{
		"id":         personaID,
		"project_id": projectID,
		"user_id":    userID,
	})
	if err != nil {
		return nil, guarded(err, "persona")
	}
	return persona, nil
}

func (s *PersonaService) Update(userID, projectID, personaID string, fields map[string]interface{}) (*model.Persona, error) {
	persona, err := store.Update[model.Persona](s.db, store.Filter{
		"id":         personaID,
		"project_id": projectID,
		"user_id":    userID,
	}, fields)
	if err != nil {
		return nil, guarded(err, "persona")
	}
	return persona, nil
}

// Delete removes the persona and all its details in one transaction.
func (s *PersonaService) Delete(userID, projectID, personaID string) error {
	if _, err := s.Get(userID, projectID, personaID); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := store.Delete[model.PersonaDetail](tx, store.Filter{"persona_id": personaID}); err != nil {
			return err
		}
		return store.Delete[model.Persona](tx, store.Filter{
			"id":         personaID,
			"project_id": projectID,
			"user_id":    userID,
		})
	})
}

// Details are addressed by persona alone; ownership is re-checked through the
// persona's own owner column on every call.

func (s *PersonaService) ListDetails(userID, personaID string) ([]model.PersonaDetail, error) {
	if _, err := ensurePersona(s.db, personaID, userID); err != nil {
		return nil, err
	}
	return store.List[model.PersonaDetail](s.db,
		store.Filter{"persona_id": personaID, "user_id": userID},
		"category", "order_index")
}

func (s *PersonaService) CreateDetail(userID, personaID, category, content string) (*model.PersonaDetail, error) {
	if _, err := ensurePersona(s.db, personaID, userID); err != nil {
		return nil, err
	}
	if !model.ValidPersonaDetailCategory(category) {
		return nil, fmt.Errorf("40001:invalid persona detail category %q", category)
	}
	orderIndex, err := store.NextPosition[model.PersonaDetail](s.db, store.Filter{
		"persona_id": personaID,
		"user_id":    userID,
		"category":   category,
	}, "order_index")
	if err != nil {
		return nil, err
	}
	detail := &model.PersonaDetail{
		PersonaID:  personaID,
		UserID:     userID,
		Category:   category,
		Content:    content,
		OrderIndex: orderIndex,
	}
	if err := store.Insert(s.db, detail); err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *PersonaService) UpdateDetail(userID, personaID, detailID string, fields map[string]interface{}) (*model.PersonaDetail, error) {
	if category, ok := fields["category"].(string); ok && !model.ValidPersonaDetailCategory(category) {
		return nil, fmt.Errorf("40001:invalid persona detail category %q", category)
	}
	detail, err := store.Update[model.PersonaDetail](s.db, store.Filter{
		"id":         detailID,
		"persona_id": personaID,
		"user_id":    userID,
	}, fields)
	if err != nil {
		return nil, guarded(err, "persona detail")
	}
	return detail, nil
}

func (s *PersonaService) DeleteDetail(userID, personaID, detailID string) error {
	filter := store.Filter{"id": detailID, "persona_id": personaID, "user_id": userID}
	if _, err := store.GetOne[model.PersonaDetail](s.db, filter); err != nil {
		return guarded(err, "persona detail")
	}
	return store.Delete[model.PersonaDetail](s.db, filter)
}

func (s *PersonaService) ReorderDetails(userID, personaID string, detailIDs []string, newCategory string) ([]model.PersonaDetail, error) {
	if _, err := ensurePersona(s.db, personaID, userID); err != nil {
		return nil, err
	}
	if len(detailIDs) == 0 {
		return nil, fmt.Errorf("40004:no items to reorder")
	}
	if newCategory != "" && !model.ValidPersonaDetailCategory(newCategory) {
		return nil, fmt.Errorf("40001:invalid persona detail category %q", newCategory)
	}
	scope := store.Filter{"persona_id": personaID, "user_id": userID}
	for _, id := range detailIDs {
		if _, err := store.GetOne[model.PersonaDetail](s.db, store.Filter{
			"id":         id,
			"persona_id": personaID,
			"user_id":    userID,
		}); err != nil {
			return nil, guarded(err, "persona detail")
		}
	}
	var extra map[string]interface{}
	if newCategory != "" {
		extra = map[string]interface{}{"category": newCategory}
	}
	if err := store.Renumber[model.PersonaDetail](s.db, scope, "order_index", detailIDs, extra); err != nil {
		return nil, err
	}
	return store.List[model.PersonaDetail](s.db, scope, "category", "order_index")
}
