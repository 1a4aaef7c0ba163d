package service

import (
	"fmt"

	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/store"
	"gorm.io/gorm"
)

type OKRService struct {
	db *gorm.DB
}

func NewOKRService(db *gorm.DB) *OKRService {
	return &OKRService{db: db}
}

// ObjectiveWithKeyResults is the list shape for the OKR board.
type ObjectiveWithKeyResults struct {
	model.Objective
	KeyResults []model.KeyResult `json:"key_results"`
}

func (s *OKRService) ListObjectives(userID, projectID string) ([]ObjectiveWithKeyResults, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	objectives, err := store.List[model.Objective](s.db,
		store.Filter{"project_id": projectID, "user_id": userID}, "created_at")
	if err != nil {
		return nil, err
	}
	result := make([]ObjectiveWithKeyResults, 0, len(objectives))
	for _, objective := range objectives {
		keyResults, err := store.List[model.KeyResult](s.db,
			store.Filter{"objective_id": objective.ID}, "created_at")
		if err != nil {
			return nil, err
		}
		result = append(result, ObjectiveWithKeyResults{Objective: objective, KeyResults: keyResults})
	}
	return result, nil
}

func (s *OKRService) CreateObjective(userID, projectID string, objective *model.Objective) (*model.Objective, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	if objective.Status == "" {
		objective.Status = model.OKRStatusNotStarted
	}
	if !model.ValidOKRStatus(objective.Status) {
		return nil, fmt.Errorf("40001:invalid OKR status %q", objective.Status)
	}
	objective.ProjectID = projectID
	objective.UserID = userID
	if err := store.Insert(s.db, objective); err != nil {
		return nil, err
	}
	return objective, nil
}

func (s *OKRService) UpdateObjective(userID, projectID, objectiveID string, fields map[string]interface{}) (*model.Objective, error) {
	if status, ok := fields["status"].(string); ok && !model.ValidOKRStatus(status) {
		return nil, fmt.Errorf("40001:invalid OKR status %q", status)
	}
	objective, err := store.Update[model.Objective](s.db, store.Filter{
		"id":         objectiveID,
		"project_id": projectID,
		"user_id":    userID,
	}, fields)
	if err != nil {
		return nil, guarded(err, "objective")
	}
	return objective, nil
}

// DeleteObjective removes the objective and all of its key results in one
// transaction.
func (s *OKRService) DeleteObjective(userID, projectID, objectiveID string) error {
	if _, err := ensureObjective(s.db, projectID, objectiveID, userID); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := store.Delete[model.KeyResult](tx, store.Filter{"objective_id": objectiveID}); err != nil {
			return err
		}
		return store.Delete[model.Objective](tx, store.Filter{
			"id":         objectiveID,
			"project_id": projectID,
			"user_id":    userID,
		})
	})
}

// CreateKeyResult walks the two-hop ownership chain (project owns objective,
// objective owns the key result) before writing.
func (s *OKRService) CreateKeyResult(userID, projectID, objectiveID string, keyResult *model.KeyResult) (*model.KeyResult, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	if _, err := ensureObjective(s.db, projectID, objectiveID, userID); err != nil {
		return nil, err
	}
	if keyResult.TargetValue <= 0 {
		return nil, fmt.Errorf("40001:target value must be greater than zero")
	}
	if keyResult.Status == "" {
		keyResult.Status = model.OKRStatusNotStarted
	}
	if !model.ValidOKRStatus(keyResult.Status) {
		return nil, fmt.Errorf("40001:invalid OKR status %q", keyResult.Status)
	}
	keyResult.ObjectiveID = objectiveID
	if err := store.Insert(s.db, keyResult); err != nil {
		return nil, err
	}
	return keyResult, nil
}

// resolveKeyResult finds the key result and re-checks the chain up to the
// caller. Key results carry no owner column of their own.
func (s *OKRService) resolveKeyResult(userID, projectID, keyResultID string) (*model.KeyResult, error) {
	keyResult, err := store.GetOne[model.KeyResult](s.db, store.Filter{"id": keyResultID})
	if err != nil {
		return nil, guarded(err, "key result")
	}
	if _, err := ensureObjective(s.db, projectID, keyResult.ObjectiveID, userID); err != nil {
		return nil, errNotFound("key result")
	}
	return keyResult, nil
}

func (s *OKRService) UpdateKeyResult(userID, projectID, keyResultID string, fields map[string]interface{}) (*model.KeyResult, error) {
	if _, err := s.resolveKeyResult(userID, projectID, keyResultID); err != nil {
		return nil, err
	}
	if err := requireStrings(fields, "title", "description", "status"); err != nil {
		return nil, err
	}
	if status, ok := fields["status"].(string); ok && !model.ValidOKRStatus(status) {
		return nil, fmt.Errorf("40001:invalid OKR status %q", status)
	}
	if _, err := floatField(fields, "current_value", 0); err != nil {
		return nil, err
	}
	target, err := floatField(fields, "target_value", 1)
	if err != nil {
		return nil, err
	}
	if target <= 0 {
		return nil, fmt.Errorf("40001:target value must be greater than zero")
	}
	keyResult, err := store.Update[model.KeyResult](s.db, store.Filter{"id": keyResultID}, fields)
	if err != nil {
		return nil, guarded(err, "key result")
	}
	return keyResult, nil
}

func (s *OKRService) DeleteKeyResult(userID, projectID, keyResultID string) error {
	if _, err := s.resolveKeyResult(userID, projectID, keyResultID); err != nil {
		return err
	}
	return store.Delete[model.KeyResult](s.db, store.Filter{"id": keyResultID})
}
