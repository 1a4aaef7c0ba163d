package service

import (
	"fmt"

	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/store"
	"gorm.io/gorm"
)

type CanvasService struct {
	db *gorm.DB
}

func NewCanvasService(db *gorm.DB) *CanvasService {
	return &CanvasService{db: db}
}

func (s *CanvasService) Get(userID, projectID string) (*model.Canvas, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	canvas, err := store.GetOne[model.Canvas](s.db, store.Filter{
		"project_id": projectID,
		"user_id":    userID,
	})
	if err != nil {
		return nil, guarded(err, "business model canvas")
	}
	return canvas, nil
}

func (s *CanvasService) Create(userID, projectID string, canvas *model.Canvas) (*model.Canvas, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	exists, err := store.Exists[model.Canvas](s.db, store.Filter{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("40901:a business model canvas already exists for this project")
	}
	canvas.ProjectID = projectID
	canvas.UserID = userID
	if err := store.Insert(s.db, canvas); err != nil {
		return nil, err
	}
	return canvas, nil
}

func (s *CanvasService) Update(userID, projectID string, fields map[string]interface{}) (*model.Canvas, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	canvas, err := store.Update[model.Canvas](s.db, store.Filter{
		"project_id": projectID,
		"user_id":    userID,
	}, fields)
	if err != nil {
		return nil, guarded(err, "business model canvas")
	}
	return canvas, nil
}

func (s *CanvasService) ListItems(userID, projectID string) ([]model.CanvasItem, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	return store.List[model.CanvasItem](s.db,
		store.Filter{"project_id": projectID, "user_id": userID},
		"block", "position")
}

// CreateItem appends the item within its block unless the client pinned an
// explicit position.
func (s *CanvasService) CreateItem(userID, projectID, block, content string, position *int) (*model.CanvasItem, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	if !model.ValidCanvasBlock(block) {
		return nil, fmt.Errorf("40001:invalid canvas block %q", block)
	}
	pos := 0
	if position != nil {
		pos = *position
	} else {
		next, err := store.NextPosition[model.CanvasItem](s.db, store.Filter{
			"project_id": projectID,
			"user_id":    userID,
			"block":      block,
		}, "position")
		if err != nil {
			return nil, err
		}
		pos = next
	}
	item := &model.CanvasItem{
		ProjectID: projectID,
		UserID:    userID,
		Block:     block,
		Content:   content,
		Position:  pos,
	}
	if err := store.Insert(s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CanvasService) UpdateItem(userID, projectID, itemID string, fields map[string]interface{}) (*model.CanvasItem, error) {
	if block, ok := fields["block"].(string); ok && !model.ValidCanvasBlock(block) {
		return nil, fmt.Errorf("40001:invalid canvas block %q", block)
	}
	item, err := store.Update[model.CanvasItem](s.db, store.Filter{
		"id":         itemID,
		"project_id": projectID,
		"user_id":    userID,
	}, fields)
	if err != nil {
		return nil, guarded(err, "canvas item")
	}
	return item, nil
}

func (s *CanvasService) DeleteItem(userID, projectID, itemID string) error {
	filter := store.Filter{"id": itemID, "project_id": projectID, "user_id": userID}
	if _, err := store.GetOne[model.CanvasItem](s.db, filter); err != nil {
		return guarded(err, "canvas item")
	}
	return store.Delete[model.CanvasItem](s.db, filter)
}

func (s *CanvasService) ReorderItems(userID, projectID string, itemIDs []string, newBlock string) ([]model.CanvasItem, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	if len(itemIDs) == 0 {
		return nil, fmt.Errorf("40004:no items to reorder")
	}
	if newBlock != "" && !model.ValidCanvasBlock(newBlock) {
		return nil, fmt.Errorf("40001:invalid canvas block %q", newBlock)
	}
	scope := store.Filter{"project_id": projectID, "user_id": userID}
	for _, id := range itemIDs {
		if _, err := store.GetOne[model.CanvasItem](s.db, store.Filter{
			"id":         id,
			"project_id": projectID,
			"user_id":    userID,
		}); err != nil {
			return nil, guarded(err, "canvas item")
		}
	}
	var extra map[string]interface{}
	if newBlock != "" {
		extra = map[string]interface{}{"block": newBlock}
	}
	if err := store.Renumber[model.CanvasItem](s.db, scope, "position", itemIDs, extra); err != nil {
		return nil, err
	}
	return store.List[model.CanvasItem](s.db, scope, "block", "position")
}
