package types

import "time"

type Line struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PageID    uint      `gorm:"column:page_id;not null;uniqueIndex:idx_lines_page_position,priority:1" json:"page_id"`
	Position  int       `gorm:"column:position;uniqueIndex:idx_lines_page_position,priority:2" json:"position"`
	Page      *Page     `gorm:"foreignKey:PageID;references:ID" json:"-"`
	Words     []Word    `gorm:"foreignKey:LineID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Line) TableName() string { return "lines" }
