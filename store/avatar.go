package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Avatar records a cached avatar thumbnail on disk, keyed by the
// content hash of its source URL.
type Avatar struct {
	Hash      string `gorm:"primarykey;size:40"`
	URL       string
	Path      string
	FetchedAt time.Time
}

type Avatars struct {
	db *gorm.DB
}

func NewAvatars(db *gorm.DB) *Avatars {
	return &Avatars{db: db}
}

// Put records a freshly cached thumbnail.
func (a *Avatars) Put(hash, url, path string) error {
	return a.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hash"}},
		UpdateAll: true,
	}).Create(&Avatar{
		Hash:      hash,
		URL:       url,
		Path:      path,
		FetchedAt: time.Now(),
	}).Error
}

// Lookup returns the cache entry for the hash, or nil on a miss.
func (a *Avatars) Lookup(hash string) (*Avatar, error) {
	var avatar Avatar
	err := a.db.Take(&avatar, "hash = ?", hash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &avatar, nil
}
