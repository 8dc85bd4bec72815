package request_models

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Whatsapp string `json:"whatsapp" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	City     string `json:"city"`
	State    string `json:"state"`
	Country  string `json:"country"`
}

type BulkCreateUsersRequest struct {
	Users []CreateUserRequest `json:"users" binding:"required,min=1,dive"`
}

type UpdateUserRequest struct {
	Name         *string `json:"name"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Country      *string `json:"country"`
	ProfilePhoto *string `json:"profile_photo"`
	IsActive     *bool   `json:"is_active"`
}

type ReplaceLinksRequest struct {
	AccountIDs []string `json:"account_ids" binding:"required,dive,uuid"`
}
