package db_models

import "github.com/lib/pq"

// Prayer and Book hold metadata only; file blobs live in external
// storage and are referenced by URL.

type Prayer struct {
	BaseModel
	Title      string `gorm:"not null"`
	Body       string `gorm:"type:text"`
	AuthorName string
	Tags       pq.StringArray `gorm:"type:text[]"`
}

type Book struct {
	BaseModel
	Title    string `gorm:"not null"`
	Author   string
	FileURL  string
	CoverURL string
	Tags     pq.StringArray `gorm:"type:text[]"`
}
