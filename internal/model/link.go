package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FrameworkLink is a typed edge between two framework items. Endpoints are a
// (type, id) pair rather than a foreign key because targets span
// heterogeneous tables; a dangling endpoint is tolerated at read time.
type FrameworkLink struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         string    `gorm:"type:uuid;not null;index:idx_framework_links_user_id" json:"user_id"`
	ProjectID      string    `gorm:"type:uuid;not null;index:idx_framework_links_project_id" json:"project_id"`
	SourceItemID   string    `gorm:"type:uuid;not null;index:idx_framework_links_source" json:"source_item_id"`
	SourceItemType string    `gorm:"type:varchar(30);not null" json:"source_item_type"`
	TargetItemID   string    `gorm:"type:uuid;not null;index:idx_framework_links_target" json:"target_item_id"`
	TargetItemType string    `gorm:"type:varchar(30);not null" json:"target_item_type"`
	LinkType       string    `gorm:"type:varchar(30)" json:"link_type"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (FrameworkLink) TableName() string { return "framework_links" }

func (l *FrameworkLink) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
