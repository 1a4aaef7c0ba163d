package service

import (
	"fmt"

	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/store"
	"gorm.io/gorm"
)

type RICEService struct {
	db *gorm.DB
}

func NewRICEService(db *gorm.DB) *RICEService {
	return &RICEService{db: db}
}

func (s *RICEService) List(userID, projectID string) ([]model.RICEItem, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	return store.List[model.RICEItem](s.db,
		store.Filter{"project_id": projectID, "user_id": userID},
		"rice_score DESC")
}

func validateScores(reach, impact, confidence, effort int) error {
	if reach < 0 || reach > 10 || impact < 0 || impact > 10 || confidence < 0 || confidence > 10 {
		return fmt.Errorf("40001:reach, impact and confidence must be between 0 and 10")
	}
	if effort < 1 || effort > 10 {
		return fmt.Errorf("40001:effort must be between 1 and 10")
	}
	return nil
}

func (s *RICEService) Create(userID, projectID string, item *model.RICEItem) (*model.RICEItem, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	if err := validateScores(item.ReachScore, item.ImpactScore, item.ConfidenceScore, item.EffortScore); err != nil {
		return nil, err
	}
	item.ProjectID = projectID
	item.UserID = userID
	item.RICEScore = model.RICEScoreOf(item.ReachScore, item.ImpactScore, item.ConfidenceScore, item.EffortScore)
	if err := store.Insert(s.db, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *RICEService) Get(userID, projectID, itemID string) (*model.RICEItem, error) {
	item, err := store.GetOne[model.RICEItem](s.db, store.Filter{
		"id":         itemID,
		"project_id": projectID,
		"user_id":    userID,
	})
	if err != nil {
		return nil, guarded(err, "RICE item")
	}
	return item, nil
}

// Update applies the partial fields and, when any scoring input changed,
// recomputes the derived score from the merged values. The score itself is
// never writable by callers.
func (s *RICEService) Update(userID, projectID, itemID string, fields map[string]interface{}) (*model.RICEItem, error) {
	current, err := s.Get(userID, projectID, itemID)
	if err != nil {
		return nil, err
	}
	delete(fields, "rice_score")
	if err := requireStrings(fields, "name", "description"); err != nil {
		return nil, err
	}

	reach, err := intField(fields, "reach_score", current.ReachScore)
	if err != nil {
		return nil, err
	}
	impact, err := intField(fields, "impact_score", current.ImpactScore)
	if err != nil {
		return nil, err
	}
	confidence, err := intField(fields, "confidence_score", current.ConfidenceScore)
	if err != nil {
		return nil, err
	}
	effort, err := intField(fields, "effort_score", current.EffortScore)
	if err != nil {
		return nil, err
	}
	if reach != current.ReachScore || impact != current.ImpactScore ||
		confidence != current.ConfidenceScore || effort != current.EffortScore {
		if err := validateScores(reach, impact, confidence, effort); err != nil {
			return nil, err
		}
		fields["rice_score"] = model.RICEScoreOf(reach, impact, confidence, effort)
	}

	item, err := store.Update[model.RICEItem](s.db, store.Filter{
		"id":         itemID,
		"project_id": projectID,
		"user_id":    userID,
	}, fields)
	if err != nil {
		return nil, guarded(err, "RICE item")
	}
	return item, nil
}

func (s *RICEService) Delete(userID, projectID, itemID string) error {
	if _, err := s.Get(userID, projectID, itemID); err != nil {
		return err
	}
	return store.Delete[model.RICEItem](s.db, store.Filter{
		"id":         itemID,
		"project_id": projectID,
		"user_id":    userID,
	})
}

// ExistingNames lists current item names, used as prompt context so the AI
// does not suggest duplicates.
func (s *RICEService) ExistingNames(userID, projectID string) ([]string, error) {
	items, err := store.List[model.RICEItem](s.db, store.Filter{"project_id": projectID, "user_id": userID})
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names, nil
}
