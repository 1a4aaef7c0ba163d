package service

import (
	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/store"
	"gorm.io/gorm"
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

func (s *ProjectService) List(userID string) ([]model.Project, error) {
	return store.List[model.Project](s.db, store.Filter{"user_id": userID}, "updated_at DESC")
}

func (s *ProjectService) Create(userID, name string) (*model.Project, error) {
	project := &model.Project{
		UserID: userID,
		Name:   name,
	}
	if err := store.Insert(s.db, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Get(userID, projectID string) (*model.Project, error) {
	return ensureProject(s.db, projectID, userID)
}

func (s *ProjectService) Update(userID, projectID string, fields map[string]interface{}) (*model.Project, error) {
	project, err := store.Update[model.Project](s.db, store.Filter{"id": projectID, "user_id": userID}, fields)
	if err != nil {
		return nil, guarded(err, "project")
	}
	return project, nil
}

// Delete removes the project and every framework row under it in one
// transaction. Key results and persona details cascade through their parents
// since they carry no project_id column.
func (s *ProjectService) Delete(userID, projectID string) error {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		owned := store.Filter{"project_id": projectID, "user_id": userID}

		objectives, err := store.List[model.Objective](tx, owned)
		if err != nil {
			return err
		}
		for _, o := range objectives {
			if err := store.Delete[model.KeyResult](tx, store.Filter{"objective_id": o.ID}); err != nil {
				return err
			}
		}
		personas, err := store.List[model.Persona](tx, owned)
		if err != nil {
			return err
		}
		for _, p := range personas {
			if err := store.Delete[model.PersonaDetail](tx, store.Filter{"persona_id": p.ID}); err != nil {
				return err
			}
		}

		if err := store.Delete[model.Objective](tx, owned); err != nil {
			return err
		}
		if err := store.Delete[model.Persona](tx, owned); err != nil {
			return err
		}
		if err := store.Delete[model.CSDItem](tx, owned); err != nil {
			return err
		}
		if err := store.Delete[model.VisionBoard](tx, owned); err != nil {
			return err
		}
		if err := store.Delete[model.Canvas](tx, owned); err != nil {
			return err
		}
		if err := store.Delete[model.CanvasItem](tx, owned); err != nil {
			return err
		}
		if err := store.Delete[model.RICEItem](tx, owned); err != nil {
			return err
		}
		if err := store.Delete[model.RoadmapItem](tx, owned); err != nil {
			return err
		}
		if err := store.Delete[model.FrameworkLink](tx, owned); err != nil {
			return err
		}
		return store.Delete[model.Project](tx, store.Filter{"id": projectID, "user_id": userID})
	})
}
