package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Session is the stored login. There is at most one row; logging in
// again replaces it. DeviceID is generated once per install and
// survives re-login.
type Session struct {
	ID        uint `gorm:"primarykey"`
	Token     string
	UserID    int
	DeviceID  string `gorm:"size:36"`
	UpdatedAt time.Time
}

type Sessions struct {
	db *gorm.DB
}

func NewSessions(db *gorm.DB) *Sessions {
	return &Sessions{db: db}
}

// Set stores the bearer token for the given user, replacing any
// existing session but keeping the install's device id.
func (s *Sessions) Set(token string, userID int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		deviceID := uuid.New().String()
		var current Session
		if err := tx.First(&current).Error; err == nil {
			deviceID = current.DeviceID
		}
		if err := tx.Where("1 = 1").Delete(&Session{}).Error; err != nil {
			return err
		}
		return tx.Create(&Session{
			Token:    token,
			UserID:   userID,
			DeviceID: deviceID,
		}).Error
	})
}

// Current returns the stored session, or nil when logged out.
func (s *Sessions) Current() (*Session, error) {
	var session Session
	err := s.db.First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Token returns the stored bearer token, or "" when logged out.
// Together with Clear this satisfies buddypress.SessionStore.
func (s *Sessions) Token() string {
	session, err := s.Current()
	if err != nil || session == nil {
		return ""
	}
	return session.Token
}

// Clear forgets the session. Clearing an absent session is a no-op.
func (s *Sessions) Clear() error {
	return s.db.Where("1 = 1").Delete(&Session{}).Error
}
