package service

import (
	"fmt"

	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/store"
	"gorm.io/gorm"
)

type CSDService struct {
	db *gorm.DB
}

func NewCSDService(db *gorm.DB) *CSDService {
	return &CSDService{db: db}
}

func (s *CSDService) List(userID, projectID string) ([]model.CSDItem, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	return store.List[model.CSDItem](s.db,
		store.Filter{"project_id": projectID, "user_id": userID},
		"category", "position")
}

func (s *CSDService) Create(userID, projectID, category, text string) (*model.CSDItem, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	if !model.ValidCSDCategory(category) {
		return nil, fmt.Errorf("40001:invalid CSD category %q", category)
	}
	position, err := store.NextPosition[model.CSDItem](s.db, store.Filter{
		"project_id": projectID,
		"user_id":    userID,
		"category":   category,
	}, "position")
	if err != nil {
		return nil, err
	}
	item := &model.CSDItem{
		ProjectID: projectID,
		UserID:    userID,
		Category:  category,
		Text:      text,
		Position:  position,
	}
	if err := store.Insert(s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CSDService) Get(userID, projectID, itemID string) (*model.CSDItem, error) {
	item, err := store.GetOne[model.CSDItem](s.db, store.Filter{
		"id":         itemID,
		"project_id": projectID,
		"user_id":    userID,
	})
	if err != nil {
		return nil, guarded(err, "CSD item")
	}
	return item, nil
}

func (s *CSDService) Update(userID, projectID, itemID string, fields map[string]interface{}) (*model.CSDItem, error) {
	if category, ok := fields["category"].(string); ok && !model.ValidCSDCategory(category) {
		return nil, fmt.Errorf("40001:invalid CSD category %q", category)
	}
	item, err := store.Update[model.CSDItem](s.db, store.Filter{
		"id":         itemID,
		"project_id": projectID,
		"user_id":    userID,
	}, fields)
	if err != nil {
		return nil, guarded(err, "CSD item")
	}
	return item, nil
}

func (s *CSDService) Delete(userID, projectID, itemID string) error {
	if _, err := s.Get(userID, projectID, itemID); err != nil {
		return err
	}
	return store.Delete[model.CSDItem](s.db, store.Filter{
		"id":         itemID,
		"project_id": projectID,
		"user_id":    userID,
	})
}

// Reorder renumbers the listed items to match the supplied order, optionally
// moving them all into a new category. Every id must resolve under the
// caller's project or the whole call is rejected before any write.
func (s *CSDService) Reorder(userID, projectID string, itemIDs []string, newCategory string) ([]model.CSDItem, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	if len(itemIDs) == 0 {
		return nil, fmt.Errorf("40004:no items to reorder")
	}
	if newCategory != "" && !model.ValidCSDCategory(newCategory) {
		return nil, fmt.Errorf("40001:invalid CSD category %q", newCategory)
	}
	scope := store.Filter{"project_id": projectID, "user_id": userID}
	for _, id := range itemIDs {
		if _, err := store.GetOne[model.CSDItem](s.db, store.Filter{
			"id":         id,
			"project_id": projectID,
			"user_id":    userID,
		}); err != nil {
			return nil, guarded(err, "CSD item")
		}
	}
	var extra map[string]interface{}
	if newCategory != "" {
		extra = map[string]interface{}{"category": newCategory}
	}
	if err := store.Renumber[model.CSDItem](s.db, scope, "position", itemIDs, extra); err != nil {
		return nil, err
	}
	return store.List[model.CSDItem](s.db, scope, "category", "position")
}
