package models

import (
	"time"

	"gorm.io/datatypes"
)

// Event is a scheduled session of a Game hosted by an organizer.
// Events are hard-deleted so their join rows can go with them.
// Attendance lives in EventGamer and is reached through Gamer.Attending.
type Event struct {
	ID          uint           `gorm:"primaryKey"`
	GameID      uint           `gorm:"not null;index"`
	OrganizerID uint           `gorm:"not null;index"`
	Description string         `gorm:"type:text;not null"`
	Date        datatypes.Date `gorm:"not null"`
	Time        datatypes.Time `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Game      Game  `gorm:"foreignKey:GameID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Organizer Gamer `gorm:"foreignKey:OrganizerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
