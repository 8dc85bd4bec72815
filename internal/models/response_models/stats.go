package response_models

import "github.com/google/uuid"

// WindowSummary holds the five standard aggregation windows for one
// subject (an account or a user). All values are plain sums of entry
// counts; an empty subject yields the zero value, never an error.
type WindowSummary struct {
	Today     int64 `json:"today"`
	ThisWeek  int64 `json:"this_week"`
	ThisMonth int64 `json:"this_month"`
	ThisYear  int64 `json:"this_year"`
	Overall   int64 `json:"overall"`
}

type AccountWindowSummary struct {
	AccountID  uuid.UUID `json:"account_id"`
	Name       string    `json:"name"`
	TargetGoal *int64    `json:"target_goal,omitempty"`
	WindowSummary
}
