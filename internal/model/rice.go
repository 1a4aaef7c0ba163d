package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RICEItem is a prioritization entry. Score is derived server-side from the
// four inputs and never accepted from clients.
type RICEItem struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID       string    `gorm:"type:uuid;not null;index:idx_rice_items_project_id" json:"project_id"`
	UserID          string    `gorm:"type:uuid;not null;index:idx_rice_items_user_id" json:"user_id"`
	Name            string    `gorm:"type:varchar(100);not null" json:"name"`
	Description     string    `gorm:"type:varchar(500)" json:"description"`
	ReachScore      int       `gorm:"not null" json:"reach_score"`
	ImpactScore     int       `gorm:"not null" json:"impact_score"`
	ConfidenceScore int       `gorm:"not null" json:"confidence_score"`
	EffortScore     int       `gorm:"not null" json:"effort_score"`
	RICEScore       float64   `gorm:"column:rice_score;not null" json:"rice_score"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (RICEItem) TableName() string { return "rice_items" }

func (i *RICEItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// RICEScoreOf computes (reach * impact * confidence) / effort with effort
// clamped to at least 1.
func RICEScoreOf(reach, impact, confidence, effort int) float64 {
	if effort < 1 {
		effort = 1
	}
	return float64(reach*impact*confidence) / float64(effort)
}
