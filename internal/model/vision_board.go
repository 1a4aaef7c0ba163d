package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisionBoard is the Product Vision Board for a project. At most one exists
// per project; creation of a second one is rejected with a conflict.
type VisionBoard struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID       string    `gorm:"type:uuid;not null;index:idx_vision_boards_project_id" json:"project_id"`
	UserID          string    `gorm:"type:uuid;not null;index:idx_vision_boards_user_id" json:"user_id"`
	Vision          string    `gorm:"type:varchar(1000)" json:"vision"`
	TargetCustomers string    `gorm:"type:varchar(1000)" json:"target_customers"`
	CustomerNeeds   string    `gorm:"type:varchar(1000)" json:"customer_needs"`
	ProductFeatures string    `gorm:"type:varchar(1000)" json:"product_features"`
	BusinessGoals   string    `gorm:"type:varchar(1000)" json:"business_goals"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (VisionBoard) TableName() string { return "product_vision_boards" }

func (v *VisionBoard) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
