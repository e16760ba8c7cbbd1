package storage

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Entry is one persisted key/value pair. The whole per-branch state
// serializes into a single value, so a write is always atomic.
type Entry struct {
	StoreKey  string    `gorm:"column:store_key;primaryKey;type:varchar(191)"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Entry) TableName() string {
	return "store_entries"
}

type subscriber struct {
	id string
	fn ChangeFunc
}

// GormStore keeps blobs in a GORM-managed table and fans change
// notifications out to in-process subscribers.
type GormStore struct {
	db   *gorm.DB
	mu   sync.Mutex
	subs map[string][]subscriber // key -> subscribers
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:   db,
		subs: make(map[string][]subscriber),
	}
}

// Migrate creates the backing table.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&Entry{})
}

func (s *GormStore) Read(key string) ([]byte, error) {
	var entry Entry
	if err := s.db.First(&entry, "store_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return []byte(entry.Value), nil
}

func (s *GormStore) Write(key string, value []byte, writerID string) error {
	entry := Entry{StoreKey: key, Value: string(value), UpdatedAt: time.Now()}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return err
	}

	s.mu.Lock()
	notify := make([]subscriber, 0, len(s.subs[key]))
	for _, sub := range s.subs[key] {
		if sub.id != writerID {
			notify = append(notify, sub)
		}
	}
	s.mu.Unlock()

	for _, sub := range notify {
		sub.fn(key, writerID)
	}
	return nil
}

// Subscribe registers fn for external changes to exactly key. A second
// subscription with the same subscriberID replaces the first.
func (s *GormStore) Subscribe(key, subscriberID string, fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := s.subs[key]
	for i, sub := range subs {
		if sub.id == subscriberID {
			subs[i].fn = fn
			return
		}
	}
	s.subs[key] = append(subs, subscriber{id: subscriberID, fn: fn})
}

func (s *GormStore) Unsubscribe(key, subscriberID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs := s.subs[key]
	for i, sub := range subs {
		if sub.id == subscriberID {
			s.subs[key] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}
