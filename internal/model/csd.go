package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CSD matrix categories.
const (
	CSDCategoryCertainty   = "Certainty"
	CSDCategorySupposition = "Supposition"
	CSDCategoryDoubt       = "Doubt"
)

func ValidCSDCategory(c string) bool {
	switch c {
	case CSDCategoryCertainty, CSDCategorySupposition, CSDCategoryDoubt:
		return true
	}
	return false
}

// CSDItem is a single card on the Certainty-Supposition-Doubt matrix.
// Position ranks items within their category column.
type CSDItem struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID string    `gorm:"type:uuid;not null;index:idx_csd_items_project_id" json:"project_id"`
	UserID    string    `gorm:"type:uuid;not null;index:idx_csd_items_user_id" json:"user_id"`
	Category  string    `gorm:"type:varchar(20);not null" json:"category"`
	Text      string    `gorm:"type:varchar(500);not null" json:"text"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CSDItem) TableName() string { return "csd_items" }

func (i *CSDItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
