package models

import "time"

// Entry is a single keyed blob in the local store.
type Entry struct {
	Key       string `gorm:"column:entry_key;primaryKey;size:200"`
	Value     []byte
	UpdatedAt time.Time
}
