package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OKRStatusNotStarted = "Not Started"
	OKRStatusInProgress = "In Progress"
	OKRStatusCompleted  = "Completed"
	OKRStatusAtRisk     = "At Risk"
)

func ValidOKRStatus(s string) bool {
	switch s {
	case OKRStatusNotStarted, OKRStatusInProgress, OKRStatusCompleted, OKRStatusAtRisk:
		return true
	}
	return false
}

type Objective struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   string    `gorm:"type:uuid;not null;index:idx_objectives_project_id" json:"project_id"`
	UserID      string    `gorm:"type:uuid;not null;index:idx_objectives_user_id" json:"user_id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:varchar(500)" json:"description"`
	Status      string    `gorm:"type:varchar(20);not null;default:Not Started" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Objective) TableName() string { return "objectives" }

func (o *Objective) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// KeyResult is owned through its objective: it carries no user_id of its own,
// so every access walks objective -> project -> owner.
type KeyResult struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	ObjectiveID  string    `gorm:"type:uuid;not null;index:idx_key_results_objective_id" json:"objective_id"`
	Title        string    `gorm:"type:varchar(200);not null" json:"title"`
	Description  string    `gorm:"type:varchar(500)" json:"description"`
	CurrentValue float64   `gorm:"not null;default:0" json:"current_value"`
	TargetValue  float64   `gorm:"not null" json:"target_value"`
	Status       string    `gorm:"type:varchar(20);not null;default:Not Started" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (KeyResult) TableName() string { return "key_results" }

func (k *KeyResult) BeforeCreate(tx *gorm.DB) error {
	if k.ID == "" {
		k.ID = uuid.NewString()
	}
	return nil
}

// Progress reports the key result as a percentage of target, capped at 100.
func (k *KeyResult) Progress() float64 {
	if k.TargetValue == 0 {
		return 0
	}
	p := k.CurrentValue / k.TargetValue * 100
	if p > 100 {
		return 100
	}
	return p
}
