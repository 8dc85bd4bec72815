package response_models

import (
	"time"

	"github.com/google/uuid"
)

type SeriesPoint struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Count int64  `json:"count"`
}

type WeekBucket struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
	Count int64  `json:"count"`
}

type SourceSlice struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

type CityCount struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

type TotalStats struct {
	Users   int64 `json:"users"`
	Entries int64 `json:"entries"`
	Total   int64 `json:"total"`
}

type RecentEntry struct {
	ID          uuid.UUID `json:"id"`
	UserName    string    `json:"user_name"`
	AccountName string    `json:"account_name"`
	Count       int64     `json:"count"`
	SourceType  string    `json:"source_type"`
	EntryDate   string    `json:"entry_date"`
	StartDate   *string   `json:"start_date,omitempty"`
	EndDate     *string   `json:"end_date,omitempty"`
	CreatedAt   int64     `json:"created_at"`
}

type LinkedAccount struct {
	AccountID uuid.UUID `json:"account_id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"is_active"`
}

// PublicReport is the composite dashboard payload. Sections are
// best-effort: a section whose computation failed is listed in
// FailedSections and left zero-valued, so callers can tell "no
// contributions" apart from "could not compute".
type PublicReport struct {
	GeneratedAt     time.Time              `json:"generated_at"`
	Totals          TotalStats             `json:"totals"`
	AccountStats    []AccountWindowSummary `json:"account_stats"`
	TopContributors []RankedSubject        `json:"top_contributors"`
	FastestGrowing  []RankedSubject        `json:"fastest_growing"`
	Daily           []SeriesPoint          `json:"daily"`
	Weekly          []WeekBucket           `json:"weekly"`
	Sources         []SourceSlice          `json:"sources"`
	Cities          []CityCount            `json:"cities"`
	NewUsers        []SeriesPoint          `json:"new_users"`
	RecentEntries   []RecentEntry          `json:"recent_entries"`
	FailedSections  []string               `json:"failed_sections,omitempty"`
}
