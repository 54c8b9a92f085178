package models

import "gorm.io/gorm"

// GameType classifies a game (e.g. "Board game", "Card game").
type GameType struct {
	gorm.Model
	Label string `gorm:"size:100;unique;not null"`
}
