package request_models

type SubmitEntryRequest struct {
	AccountID  string `json:"account_id" binding:"required,uuid"`
	Count      int64  `json:"count"`
	SourceType string `json:"source_type"`
	// YYYY-MM-DD; defaults to today when empty
	EntryDate string `json:"entry_date"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type SubmitBatchRequest struct {
	Entries []SubmitEntryRequest `json:"entries" binding:"required,min=1,dive"`
}
