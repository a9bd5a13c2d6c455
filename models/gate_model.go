package models

import "time"

// GateState is the durable key-value backing of the access gate
// (attempt counters and lockout deadlines, keyed per client).
type GateState struct {
	Key       string `gorm:"primaryKey;size:120"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}
