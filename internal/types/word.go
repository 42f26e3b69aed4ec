package types

import "time"

type Word struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	LineID     uint        `gorm:"column:line_id;not null;uniqueIndex:idx_words_line_position,priority:1" json:"line_id"`
	Position   int         `gorm:"column:position;uniqueIndex:idx_words_line_position,priority:2" json:"position"`
	Content    string      `gorm:"column:content" json:"content"`
	Ayah       string      `gorm:"column:ayah" json:"ayah"`
	Line       *Line       `gorm:"foreignKey:LineID;references:ID" json:"-"`
	Variations []Variation `gorm:"foreignKey:WordID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"not null" json:"updated_at"`
}

func (Word) TableName() string { return "words" }
