package testutil

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"namabank/internal/infra"
	"namabank/internal/models/db_models"
)

func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := infra.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// FixedClock pins "now" so window edges are deterministic under test.
type FixedClock struct {
	T time.Time
}

func (f FixedClock) Now() time.Time { return f.T }

func CreateUser(t *testing.T, db *gorm.DB, name, city string) *db_models.User {
	t.Helper()

	user := &db_models.User{
		Name:     name,
		Whatsapp: name + "-whatsapp",
		City:     city,
		Role:     db_models.RoleUser,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func CreateAccount(t *testing.T, db *gorm.DB, name string, active bool) *db_models.NamaAccount {
	t.Helper()

	account := &db_models.NamaAccount{
		Name:      name,
		IsActive:  active,
		StartDate: "2024-01-01",
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("create account: %v", err)
	}
	return account
}

func LinkUserToAccount(t *testing.T, db *gorm.DB, user *db_models.User, account *db_models.NamaAccount) {
	t.Helper()

	link := &db_models.UserAccountLink{
		UserID:    user.ID,
		AccountID: account.ID,
	}
	if err := db.Create(link).Error; err != nil {
		t.Fatalf("link user to account: %v", err)
	}
}

func CreateEntry(t *testing.T, db *gorm.DB, user *db_models.User, account *db_models.NamaAccount, count int64, entryDate string) *db_models.NamaEntry {
	t.Helper()

	entry := &db_models.NamaEntry{
		UserID:     user.ID,
		AccountID:  account.ID,
		Count:      count,
		SourceType: db_models.SourceManual,
		EntryDate:  entryDate,
	}
	if err := db.Create(entry).Error; err != nil {
		t.Fatalf("create entry: %v", err)
	}
	return entry
}
