package types

import "time"

type Mushaf struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"column:title" json:"title"`
	Pages     []Page    `gorm:"foreignKey:MushafID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Mushaf) TableName() string { return "mushafs" }
