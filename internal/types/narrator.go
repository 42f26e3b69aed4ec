package types

import "time"

const DefaultHighlightColor = "#f9ca24"

// Narrator is self-referential: a narration school groups its individual
// narrators through ParentID (the narrator_id column). Only one level of
// parent is ever materialized for projection.
type Narrator struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Title          string     `gorm:"column:title" json:"title"`
	HighlightColor string     `gorm:"column:highlight_color;not null;default:'#f9ca24'" json:"highlight_color"`
	ParentID       *uint      `gorm:"column:narrator_id;index" json:"narrator_id"`
	RegionID       *uint      `gorm:"column:region_id;index" json:"region_id"`
	Parent         *Narrator  `gorm:"foreignKey:ParentID;references:ID" json:"-"`
	Region         *Region    `gorm:"foreignKey:RegionID;references:ID" json:"-"`
	Children       []Narrator `gorm:"foreignKey:ParentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt      time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"not null" json:"updated_at"`
}

func (Narrator) TableName() string { return "narrators" }
