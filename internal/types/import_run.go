package types

import (
	"time"

	"gorm.io/datatypes"
)

// ImportRun records the provenance of one scraped page import: which layout
// and page number it came from and the raw capture payload.
type ImportRun struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	MushafID   uint           `gorm:"column:mushaf_id;not null;index" json:"mushaf_id"`
	LayoutID   int            `gorm:"column:layout_id;not null" json:"layout_id"`
	PageNumber int            `gorm:"column:page_number;not null" json:"page_number"`
	Status     string         `gorm:"column:status;not null;default:'imported'" json:"status"`
	Payload    datatypes.JSON `gorm:"column:payload;type:jsonb" json:"payload,omitempty"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null" json:"updated_at"`
}

func (ImportRun) TableName() string { return "import_runs" }
