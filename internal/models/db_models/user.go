package db_models

const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

type User struct {
	BaseModel
	Name         string `gorm:"not null"`
	Whatsapp     string `gorm:"uniqueIndex;not null"`
	PasswordHash string
	City         string
	State        string
	Country      string
	ProfilePhoto string
	Role         string `gorm:"default:user"`
	IsActive     bool   `gorm:"default:true"`

	Entries []NamaEntry       `gorm:"foreignKey:UserID"`
	Links   []UserAccountLink `gorm:"foreignKey:UserID"`
}
