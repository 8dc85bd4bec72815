package db_models

// NamaAccount is a shared collective tally ("Nama Bank") users
// contribute counts toward. Deactivation is a soft-disable: the account
// drops out of active listings but its ledger entries are kept.
type NamaAccount struct {
	BaseModel
	Name       string  `gorm:"uniqueIndex;not null"`
	IsActive   bool    `gorm:"default:true"`
	StartDate  string  `gorm:"type:date"`
	EndDate    *string `gorm:"type:date"`
	TargetGoal *int64

	Entries []NamaEntry       `gorm:"foreignKey:AccountID"`
	Links   []UserAccountLink `gorm:"foreignKey:AccountID"`
}
