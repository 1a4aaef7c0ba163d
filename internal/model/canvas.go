package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Business Model Canvas blocks.
var CanvasBlocks = []string{
	"key_partners",
	"key_activities",
	"key_resources",
	"value_propositions",
	"customer_relationships",
	"channels",
	"customer_segments",
	"cost_structure",
	"revenue_streams",
}

func ValidCanvasBlock(b string) bool {
	for _, known := range CanvasBlocks {
		if b == known {
			return true
		}
	}
	return false
}

// Canvas is the Business Model Canvas for a project, one free-text field per
// block. Singleton per project, same as VisionBoard.
type Canvas struct {
	ID                    string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID             string    `gorm:"type:uuid;not null;index:idx_canvases_project_id" json:"project_id"`
	UserID                string    `gorm:"type:uuid;not null;index:idx_canvases_user_id" json:"user_id"`
	KeyPartners           string    `gorm:"type:varchar(1000)" json:"key_partners"`
	KeyActivities         string    `gorm:"type:varchar(1000)" json:"key_activities"`
	KeyResources          string    `gorm:"type:varchar(1000)" json:"key_resources"`
	ValuePropositions     string    `gorm:"type:varchar(1000)" json:"value_propositions"`
	CustomerRelationships string    `gorm:"type:varchar(1000)" json:"customer_relationships"`
	Channels              string    `gorm:"type:varchar(1000)" json:"channels"`
	CustomerSegments      string    `gorm:"type:varchar(1000)" json:"customer_segments"`
	CostStructure         string    `gorm:"type:varchar(1000)" json:"cost_structure"`
	RevenueStreams        string    `gorm:"type:varchar(1000)" json:"revenue_streams"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func (Canvas) TableName() string { return "business_model_canvases" }

func (c *Canvas) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CanvasItem is a single sticky-note style entry inside one canvas block.
// Position ranks items within their block.
type CanvasItem struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID string    `gorm:"type:uuid;not null;index:idx_canvas_items_project_id" json:"project_id"`
	UserID    string    `gorm:"type:uuid;not null;index:idx_canvas_items_user_id" json:"user_id"`
	Block     string    `gorm:"type:varchar(30);not null" json:"block"`
	Content   string    `gorm:"type:varchar(1000);not null" json:"content"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CanvasItem) TableName() string { return "bmc_items" }

func (i *CanvasItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
