package models

// Game is a catalog item owned by the gamer who added it.
type Game struct {
	ID              uint   `gorm:"primaryKey"`
	GameTypeID      uint   `gorm:"not null;index"`
	GamerID         uint   `gorm:"not null;index"`
	Title           string `gorm:"size:255;not null"`
	Maker           string `gorm:"size:255;not null"`
	NumberOfPlayers int    `gorm:"not null"`
	SkillLevel      int    `gorm:"not null"`

	GameType GameType `gorm:"foreignKey:GameTypeID"`
	Gamer    Gamer    `gorm:"foreignKey:GamerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
