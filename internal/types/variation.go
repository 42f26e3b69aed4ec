package types

import "time"

// Variation binds one word to one narrator. The composite unique index is the
// natural key: concurrent writers racing on the same pair resolve to a single
// row via ON CONFLICT DO UPDATE rather than a duplicate insert.
type Variation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Content    string    `gorm:"column:content" json:"content"`
	WordID     uint      `gorm:"column:word_id;not null;uniqueIndex:idx_variations_word_narrator,priority:1" json:"word_id"`
	NarratorID uint      `gorm:"column:narrator_id;not null;uniqueIndex:idx_variations_word_narrator,priority:2;index" json:"narrator_id"`
	Word       *Word     `gorm:"foreignKey:WordID;references:ID" json:"-"`
	// No explicit foreignKey hint: Narrator's self-reference column is also
	// named narrator_id, so "foreignKey:NarratorID" resolves against Narrator
	// and inverts the relation; the implicit guess binds Variation.NarratorID.
	Narrator   *Narrator `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}

func (Variation) TableName() string { return "variations" }
