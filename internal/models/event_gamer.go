package models

import "time"

// EventGamer records one gamer attending one event.
// The composite primary key makes a second signup for the same pair a conflict.
type EventGamer struct {
	GamerID   uint `gorm:"primaryKey;autoIncrement:false"`
	EventID   uint `gorm:"primaryKey;autoIncrement:false"`
	CreatedAt time.Time
}
