package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FeedSnapshot is the last successful result for one filter
// signature, kept so the feed can render something in a dead zone.
type FeedSnapshot struct {
	Signature string `gorm:"primarykey;size:512"`
	Body      []byte
	FetchedAt time.Time
}

type Snapshots struct {
	db *gorm.DB
}

func NewSnapshots(db *gorm.DB) *Snapshots {
	return &Snapshots{db: db}
}

// Put stores the encoded activity list for the filter signature,
// replacing any previous snapshot for the same signature.
func (s *Snapshots) Put(signature string, body []byte) error {
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "signature"}},
		UpdateAll: true,
	}).Create(&FeedSnapshot{
		Signature: signature,
		Body:      body,
		FetchedAt: time.Now(),
	}).Error
}

// Get returns the snapshot for the filter signature, or nil if none
// has been stored.
func (s *Snapshots) Get(signature string) (*FeedSnapshot, error) {
	var snap FeedSnapshot
	err := s.db.Take(&snap, "signature = ?", signature).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
