package request_models

type LoginRequest struct {
	Whatsapp string `json:"whatsapp" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}
