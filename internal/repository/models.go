package repository

import "time"

// KVEntry is one persisted snapshot in the shared database.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:128"`
	Value     []byte    `gorm:"type:bytea;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
