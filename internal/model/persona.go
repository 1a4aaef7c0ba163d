package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PersonaDetailGoal       = "Goal"
	PersonaDetailNeed       = "Need"
	PersonaDetailPainPoint  = "Pain Point"
	PersonaDetailMotivation = "Motivation"
)

func ValidPersonaDetailCategory(c string) bool {
	switch c {
	case PersonaDetailGoal, PersonaDetailNeed, PersonaDetailPainPoint, PersonaDetailMotivation:
		return true
	}
	return false
}

type Persona struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID    string    `gorm:"type:uuid;not null;index:idx_personas_project_id" json:"project_id"`
	UserID       string    `gorm:"type:uuid;not null;index:idx_personas_user_id" json:"user_id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	PhotoURL     string    `gorm:"type:varchar(500)" json:"photo_url"`
	Quote        string    `gorm:"type:text" json:"quote"`
	Demographics string    `gorm:"type:text" json:"demographics"`
	Bio          string    `gorm:"type:text" json:"bio"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Persona) TableName() string { return "personas" }

func (p *Persona) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PersonaDetail is a single entry in one of the persona's sections.
// OrderIndex ranks details within their category.
type PersonaDetail struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	PersonaID  string    `gorm:"type:uuid;not null;index:idx_persona_details_persona_id" json:"persona_id"`
	UserID     string    `gorm:"type:uuid;not null;index:idx_persona_details_user_id" json:"user_id"`
	Category   string    `gorm:"type:varchar(20);not null" json:"category"`
	Content    string    `gorm:"type:varchar(500);not null" json:"content"`
	OrderIndex int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (PersonaDetail) TableName() string { return "persona_details" }

func (d *PersonaDetail) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
