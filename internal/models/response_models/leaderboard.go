package response_models

// SubjectTotal is one (subject, total) pair fed into the ranking
// builder. SubjectID doubles as the deterministic tie-break key.
type SubjectTotal struct {
	SubjectID string `json:"subject_id"`
	Name      string `json:"name"`
	City      string `json:"city,omitempty"`
	Total     int64  `json:"total"`
}

type RankedSubject struct {
	SubjectTotal
	Rank int `json:"rank"`
}
