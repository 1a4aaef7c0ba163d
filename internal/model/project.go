package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is the root of all framework data. Every child entity carries the
// owner's user_id alongside its parent id, so ownership is re-checked on each
// request rather than inferred from the chain.
type Project struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index:idx_projects_user_id" json:"user_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
