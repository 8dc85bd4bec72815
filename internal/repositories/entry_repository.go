package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"namabank/internal/models/db_models"
)

type EntryRepository interface {
	Insert(ctx context.Context, entry *db_models.NamaEntry) error
	// InsertBatch appends all rows in a single transaction; readers
	// never observe a strict subset of the batch.
	InsertBatch(ctx context.Context, entries []*db_models.NamaEntry) error

	ListWindowRowsByAccount(ctx context.Context, accountID uuid.UUID) ([]EntryWindowRow, error)
	ListWindowRowsByUser(ctx context.Context, userID uuid.UUID) ([]EntryWindowRow, error)
	ListWindowRowsAll(ctx context.Context) ([]EntryWindowRow, error)

	UserTotals(ctx context.Context) ([]SubjectTotalRow, error)
	AccountTotalsSince(ctx context.Context, minDate string) ([]SubjectTotalRow, error)
	DatedTotalsSince(ctx context.Context, minDate string) ([]DatedTotalRow, error)
	SourceTotals(ctx context.Context) ([]SourceTotalRow, error)

	CountEntries(ctx context.Context) (int64, error)
	SumCounts(ctx context.Context) (int64, error)

	Recent(ctx context.Context, limit int) ([]RecentEntryRow, error)
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]RecentEntryRow, error)
}

type entryRepository struct {
	db *gorm.DB
}

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

// ---------- Row helpers ----------

type EntryWindowRow struct {
	AccountID uuid.UUID `gorm:"column:account_id"`
	Count     int64     `gorm:"column:count"`
	EntryDate string    `gorm:"column:entry_date"`
}

type SubjectTotalRow struct {
	SubjectID string `gorm:"column:subject_id"`
	Name      string `gorm:"column:name"`
	City      string `gorm:"column:city"`
	Total     int64  `gorm:"column:total"`
}

type DatedTotalRow struct {
	EntryDate string `gorm:"column:entry_date"`
	Total     int64  `gorm:"column:total"`
}

type SourceTotalRow struct {
	SourceType string `gorm:"column:source_type"`
	Total      int64  `gorm:"column:total"`
}

type RecentEntryRow struct {
	ID          string  `gorm:"column:id"`
	UserName    string  `gorm:"column:user_name"`
	AccountName string  `gorm:"column:account_name"`
	Count       int64   `gorm:"column:count"`
	SourceType  string  `gorm:"column:source_type"`
	EntryDate   string  `gorm:"column:entry_date"`
	StartDate   *string `gorm:"column:start_date"`
	EndDate     *string `gorm:"column:end_date"`
	CreatedAt   int64   `gorm:"column:created_at"`
}

// ---------- Writes ----------

func (r *entryRepository) Insert(ctx context.Context, entry *db_models.NamaEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *entryRepository) InsertBatch(ctx context.Context, entries []*db_models.NamaEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.WithContext(ctx).Create(&entries).Error
	})
}

// ---------- Window scans (compute-on-read inputs) ----------

func (r *entryRepository) ListWindowRowsByAccount(ctx context.Context, accountID uuid.UUID) ([]EntryWindowRow, error) {
	var rows []EntryWindowRow
	err := r.db.WithContext(ctx).
		Model(&db_models.NamaEntry{}).
		Select("account_id, count, entry_date").
		Where("account_id = ?", accountID).
		Find(&rows).Error
	return rows, err
}

func (r *entryRepository) ListWindowRowsByUser(ctx context.Context, userID uuid.UUID) ([]EntryWindowRow, error) {
	var rows []EntryWindowRow
	err := r.db.WithContext(ctx).
		Model(&db_models.NamaEntry{}).
		Select("account_id, count, entry_date").
		Where("user_id = ?", userID).
		Find(&rows).Error
	return rows, err
}

func (r *entryRepository) ListWindowRowsAll(ctx context.Context) ([]EntryWindowRow, error) {
	var rows []EntryWindowRow
	err := r.db.WithContext(ctx).
		Model(&db_models.NamaEntry{}).
		Select("account_id, count, entry_date").
		Find(&rows).Error
	return rows, err
}

// ---------- Grouped totals ----------

// Raw table joins bypass the model's soft-delete scope; every query
// below filters deleted_at itself.

func (r *entryRepository) UserTotals(ctx context.Context) ([]SubjectTotalRow, error) {
	var rows []SubjectTotalRow
	err := r.db.WithContext(ctx).
		Table("nama_entries e").
		Select("e.user_id AS subject_id, u.name AS name, u.city AS city, SUM(e.count) AS total").
		Joins("JOIN users u ON u.id = e.user_id").
		Where("e.deleted_at IS NULL").
		Group("e.user_id, u.name, u.city").
		Find(&rows).Error
	return rows, err
}

func (r *entryRepository) AccountTotalsSince(ctx context.Context, minDate string) ([]SubjectTotalRow, error) {
	var rows []SubjectTotalRow
	err := r.db.WithContext(ctx).
		Table("nama_entries e").
		Select("e.account_id AS subject_id, a.name AS name, SUM(e.count) AS total").
		Joins("JOIN nama_accounts a ON a.id = e.account_id").
		Where("e.deleted_at IS NULL").
		Where("a.is_active = ?", true).
		Where("e.entry_date >= ?", minDate).
		Group("e.account_id, a.name").
		Find(&rows).Error
	return rows, err
}

func (r *entryRepository) DatedTotalsSince(ctx context.Context, minDate string) ([]DatedTotalRow, error) {
	var rows []DatedTotalRow
	err := r.db.WithContext(ctx).
		Model(&db_models.NamaEntry{}).
		Select("entry_date, SUM(count) AS total").
		Where("entry_date >= ?", minDate).
		Group("entry_date").
		Order("entry_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *entryRepository) SourceTotals(ctx context.Context) ([]SourceTotalRow, error) {
	var rows []SourceTotalRow
	err := r.db.WithContext(ctx).
		Model(&db_models.NamaEntry{}).
		Select("source_type, SUM(count) AS total").
		Group("source_type").
		Order("total DESC").
		Find(&rows).Error
	return rows, err
}

// ---------- Counts ----------

func (r *entryRepository) CountEntries(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&db_models.NamaEntry{}).Count(&n).Error
	return n, err
}

func (r *entryRepository) SumCounts(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.NamaEntry{}).
		Select("COALESCE(SUM(count), 0)").
		Scan(&n).Error
	return n, err
}

// ---------- Recent listings ----------

func (r *entryRepository) Recent(ctx context.Context, limit int) ([]RecentEntryRow, error) {
	var rows []RecentEntryRow
	err := r.db.WithContext(ctx).
		Table("nama_entries e").
		Select(`
			e.id,
			u.name AS user_name,
			a.name AS account_name,
			e.count,
			e.source_type,
			e.entry_date,
			e.start_date,
			e.end_date,
			e.created_at`).
		Joins("LEFT JOIN users u ON u.id = e.user_id").
		Joins("LEFT JOIN nama_accounts a ON a.id = e.account_id").
		Where("e.deleted_at IS NULL").
		Order("e.created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *entryRepository) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]RecentEntryRow, error) {
	var rows []RecentEntryRow
	err := r.db.WithContext(ctx).
		Table("nama_entries e").
		Select(`
			e.id,
			u.name AS user_name,
			a.name AS account_name,
			e.count,
			e.source_type,
			e.entry_date,
			e.start_date,
			e.end_date,
			e.created_at`).
		Joins("LEFT JOIN users u ON u.id = e.user_id").
		Joins("LEFT JOIN nama_accounts a ON a.id = e.account_id").
		Where("e.deleted_at IS NULL").
		Where("e.user_id = ?", userID).
		Order("e.created_at DESC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
