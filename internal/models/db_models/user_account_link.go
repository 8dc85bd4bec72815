package db_models

import "github.com/google/uuid"

// UserAccountLink authorizes a user to submit entries against an
// account. Established by moderators.
type UserAccountLink struct {
	BaseModel
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_account;not null"`
	AccountID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_user_account;not null"`

	Account NamaAccount `gorm:"foreignKey:AccountID"`
}
