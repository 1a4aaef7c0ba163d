package service

import (
	"fmt"

	"github.com/akumaldo/project-manager-suite/internal/model"
	"github.com/akumaldo/project-manager-suite/internal/store"
	"gorm.io/gorm"
)

type VisionBoardService struct {
	db *gorm.DB
}

func NewVisionBoardService(db *gorm.DB) *VisionBoardService {
	return &VisionBoardService{db: db}
}

func (s *VisionBoardService) Get(userID, projectID string) (*model.VisionBoard, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	board, err := store.GetOne[model.VisionBoard](s.db, store.Filter{
		"project_id": projectID,
		"user_id":    userID,
	})
	if err != nil {
		return nil, guarded(err, "product vision board")
	}
	return board, nil
}

func (s *VisionBoardService) Create(userID, projectID string, board *model.VisionBoard) (*model.VisionBoard, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	exists, err := store.Exists[model.VisionBoard](s.db, store.Filter{"project_id": projectID})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("40901:a product vision board already exists for this project")
	}
	board.ProjectID = projectID
	board.UserID = userID
	if err := store.Insert(s.db, board); err != nil {
		return nil, err
	}
	return board, nil
}

func (s *VisionBoardService) Update(userID, projectID string, fields map[string]interface{}) (*model.VisionBoard, error) {
	if _, err := ensureProject(s.db, projectID, userID); err != nil {
		return nil, err
	}
	board, err := store.Update[model.VisionBoard](s.db, store.Filter{
		"project_id": projectID,
		"user_id":    userID,
	}, fields)
	if err != nil {
		return nil, guarded(err, "product vision board")
	}
	return board, nil
}
