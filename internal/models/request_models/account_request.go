package request_models

type CreateAccountRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	TargetGoal *int64 `json:"target_goal"`
}

type UpdateAccountRequest struct {
	Name       *string `json:"name"`
	IsActive   *bool   `json:"is_active"`
	StartDate  *string `json:"start_date"`
	EndDate    *string `json:"end_date"`
	TargetGoal *int64  `json:"target_goal"`
}
