package types

import "time"

// Page position is a 1-based ordinal, unique within a mushaf. Positions are
// assigned by the importer, never inferred from insertion order.
type Page struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	MushafID  uint      `gorm:"column:mushaf_id;not null;uniqueIndex:idx_pages_mushaf_position,priority:1" json:"mushaf_id"`
	Position  int       `gorm:"column:position;uniqueIndex:idx_pages_mushaf_position,priority:2" json:"position"`
	Lines     []Line    `gorm:"foreignKey:PageID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Page) TableName() string { return "pages" }
