package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoadmapStatusPlanned    = "Planned"
	RoadmapStatusInProgress = "In Progress"
	RoadmapStatusCompleted  = "Completed"
	RoadmapStatusDelayed    = "Delayed"
)

func ValidRoadmapStatus(s string) bool {
	switch s {
	case RoadmapStatusPlanned, RoadmapStatusInProgress, RoadmapStatusCompleted, RoadmapStatusDelayed:
		return true
	}
	return false
}

func ValidRoadmapQuarter(q string) bool {
	switch q {
	case "Q1", "Q2", "Q3", "Q4":
		return true
	}
	return false
}

func ValidRoadmapPriority(p string) bool {
	switch p {
	case "high", "medium", "low":
		return true
	}
	return false
}

func ValidRoadmapTimeframe(t string) bool {
	switch t {
	case "now", "next", "later":
		return true
	}
	return false
}

// RoadmapItem is a planned deliverable on the project roadmap. Position ranks
// items within their timeframe lane.
type RoadmapItem struct {
	ID          string     `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID   string     `gorm:"type:uuid;not null;index:idx_roadmap_items_project_id" json:"project_id"`
	UserID      string     `gorm:"type:uuid;not null;index:idx_roadmap_items_user_id" json:"user_id"`
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	Description string     `gorm:"type:varchar(500)" json:"description"`
	Quarter     string     `gorm:"type:varchar(2);not null" json:"quarter"`
	Year        int        `gorm:"not null" json:"year"`
	Status      string     `gorm:"type:varchar(20);not null;default:Planned" json:"status"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Priority    string     `gorm:"type:varchar(10);default:medium" json:"priority"`
	Timeframe   string     `gorm:"type:varchar(10);default:next" json:"timeframe"`
	Position    int        `gorm:"not null;default:0" json:"position"`
	Content     string     `gorm:"type:varchar(500)" json:"content"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (RoadmapItem) TableName() string { return "roadmap_items" }

func (i *RoadmapItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
