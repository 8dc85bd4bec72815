package db_models

import "github.com/google/uuid"

// SourceType is an open set; new ingestion channels may appear without
// a schema change. The two currently known values are listed below.
type SourceType string

const (
	SourceManual SourceType = "manual"
	SourceAudio  SourceType = "audio"
)

// NamaEntry is one immutable ledger row. EntryDate (not CreatedAt) is
// the attribution date for windowed aggregation and is stored as an ISO
// YYYY-MM-DD string so date comparisons are plain lexicographic ones.
// StartDate/EndDate are only kept for audit display of back-dated
// batch offerings.
type NamaEntry struct {
	BaseModel
	UserID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	AccountID  uuid.UUID  `gorm:"type:uuid;index;not null"`
	Count      int64      `gorm:"not null"`
	SourceType SourceType `gorm:"type:text;not null;default:manual"`
	EntryDate  string     `gorm:"type:date;index;not null"`
	StartDate  *string    `gorm:"type:date"`
	EndDate    *string    `gorm:"type:date"`

	User    User        `gorm:"foreignKey:UserID"`
	Account NamaAccount `gorm:"foreignKey:AccountID"`
}
