package service

import (
	"errors"
	"fmt"

	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/store"
	"gorm.io/gorm"
)

// Coded errors follow the "NNNNN:detail" convention; handlers derive the HTTP
// status from the first three digits. Entity-absent and not-owned are both
// reported as 40401 so callers cannot tell whether a row exists under
// another tenant.

func errNotFound(what string) error {
	return fmt.Errorf("40401:%s not found", what)
}

// guarded translates a store lookup failure for entity checks: a missing row
// becomes the uniform not-found error, anything else passes through.
func guarded(err error, what string) error {
	if errors.Is(err, store.ErrNotFound) {
		return errNotFound(what)
	}
	return err
}

func ensureProject(db *gorm.DB, projectID, userID string) (*model.Project, error) {
	project, err := store.GetOne[model.Project](db, store.Filter{"id": projectID, "user_id": userID})
	if err != nil {
		return nil, guarded(err, "project")
	}
	return project, nil
}

func ensurePersona(db *gorm.DB, personaID, userID string) (*model.Persona, error) {
	persona, err := store.GetOne[model.Persona](db, store.Filter{"id": personaID, "user_id": userID})
	if err != nil {
		return nil, guarded(err, "persona")
	}
	return persona, nil
}

func ensureObjective(db *gorm.DB, projectID, objectiveID, userID string) (*model.Objective, error) {
	objective, err := store.GetOne[model.Objective](db, store.Filter{
		"id":         objectiveID,
		"project_id": projectID,
		"user_id":    userID,
	})
	if err != nil {
		return nil, guarded(err, "objective")
	}
	return objective, nil
}
