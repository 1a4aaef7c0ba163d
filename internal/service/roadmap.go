package service

import (
	"fmt"

	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/store"
	"gorm.io/gorm"
)

type RoadmapService struct {
	db *gorm.DB
}

func NewRoadmapService(db *gorm.DB) *RoadmapService {
	return &RoadmapService{db: db}
}

func (s *RoadmapService) List(userID, projectID string) ([]model.RoadmapItem, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	return store.List[model.RoadmapItem](s.db,
		store.Filter{"project_id": projectID, "user_id": userID},
		"year", "quarter", "position")
}

func validateRoadmapFields(fields map[string]interface{}) error {
	if err := requireStrings(fields, "name", "description", "content",
		"quarter", "status", "priority", "timeframe", "start_date", "end_date"); err != nil {
		return err
	}
	if q, ok := fields["quarter"].(string); ok && !model.ValidRoadmapQuarter(q) {
		return fmt.Errorf("40001:invalid quarter %q", q)
	}
	if st, ok := fields["status"].(string); ok && !model.ValidRoadmapStatus(st) {
		return fmt.Errorf("40001:invalid roadmap status %q", st)
	}
	if p, ok := fields["priority"].(string); ok && !model.ValidRoadmapPriority(p) {
		return fmt.Errorf("40001:invalid priority %q", p)
	}
	if tf, ok := fields["timeframe"].(string); ok && !model.ValidRoadmapTimeframe(tf) {
		return fmt.Errorf("40001:invalid timeframe %q", tf)
	}
	if _, ok := fields["year"]; ok {
		year, err := intField(fields, "year", 0)
		if err != nil {
			return err
		}
		if year < 2000 || year > 2100 {
			return fmt.Errorf("40001:invalid year %d", year)
		}
	}
	if _, err := intField(fields, "position", 0); err != nil {
		return err
	}
	return nil
}

func (s *RoadmapService) Create(userID, projectID string, item *model.RoadmapItem) (*model.RoadmapItem, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	if item.Status == "" {
		item.Status = model.RoadmapStatusPlanned
	}
	if item.Priority == "" {
		item.Priority = "medium"
	}
	if item.Timeframe == "" {
		item.Timeframe = "next"
	}
	if err := validateRoadmapFields(map[string]interface{}{
		"quarter":   item.Quarter,
		"status":    item.Status,
		"priority":  item.Priority,
		"timeframe": item.Timeframe,
		"year":      item.Year,
	}); err != nil {
		return nil, err
	}
	position, err := store.NextPosition[model.RoadmapItem](s.db, store.Filter{
		"project_id": projectID,
		"user_id":    userID,
		"timeframe":  item.Timeframe,
	}, "position")
	if err != nil {
		return nil, err
	}
	item.ProjectID = projectID
	item.UserID = userID
	item.Position = position
	if err := store.Insert(s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *RoadmapService) Get(userID, projectID, itemID string) (*model.RoadmapItem, error) {
	item, err := store.GetOne[model.RoadmapItem](s.db, store.Filter{
		"id":         itemID,
		"project_id": projectID,
		"user_id":    userID,
	})
	if err != nil {
		return nil, guarded(err, "roadmap item")
	}
	return item, nil
}

func (s *RoadmapService) Update(userID, projectID, itemID string, fields map[string]interface{}) (*model.RoadmapItem, error) {
	if err := validateRoadmapFields(fields); err != nil {
		return nil, err
	}
	item, err := store.Update[model.RoadmapItem](s.db, store.Filter{
		"id":         itemID,
		"project_id": projectID,
		"user_id":    userID,
	}, fields)
	if err != nil {
		return nil, guarded(err, "roadmap item")
	}
	return item, nil
}

func (s *RoadmapService) Delete(userID, projectID, itemID string) error {
	if _, err := s.Get(userID, projectID, itemID); err != nil {
		return err
	}
	return store.Delete[model.RoadmapItem](s.db, store.Filter{
		"id":         itemID,
		"project_id": projectID,
		"user_id":    userID,
	})
}

func (s *RoadmapService) Reorder(userID, projectID string, itemIDs []string, newTimeframe string) ([]model.RoadmapItem, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	if len(itemIDs) == 0 {
		return nil, fmt.Errorf("40004:no items to reorder")
	}
	if newTimeframe != "" && !model.ValidRoadmapTimeframe(newTimeframe) {
		return nil, fmt.Errorf("40001:invalid timeframe %q", newTimeframe)
	}
	scope := store.Filter{"project_id": projectID, "user_id": userID}
	for _, id := range itemIDs {
		if _, err := store.GetOne[model.RoadmapItem](s.db, store.Filter{
			"id":         id,
			"project_id": projectID,
			"user_id":    userID,
		}); err != nil {
			return nil, guarded(err, "roadmap item")
		}
	}
	var extra map[string]interface{}
	if newTimeframe != "" {
		extra = map[string]interface{}{"timeframe": newTimeframe}
	}
	if err := store.Renumber[model.RoadmapItem](s.db, scope, "position", itemIDs, extra); err != nil {
		return nil, err
	}
	return store.List[model.RoadmapItem](s.db, scope, "year", "quarter", "position")
}

// ExistingNames feeds the AI suggestion prompt, mirroring RICE.
func (s *RoadmapService) ExistingNames(userID, projectID string) ([]string, error) {
	items, err := store.List[model.RoadmapItem](s.db, store.Filter{"project_id": projectID, "user_id": userID})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names, nil
}
