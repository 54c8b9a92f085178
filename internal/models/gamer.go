package models

// Gamer is the domain profile of an account.
type Gamer struct {
	ID     uint   `gorm:"primaryKey"`
	UserID uint   `gorm:"not null;uniqueIndex"`
	Bio    string `gorm:"size:50"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	// Events this gamer has signed up for, through the event_gamers join table.
	Attending []Event `gorm:"many2many:event_gamers;joinForeignKey:GamerID;joinReferences:EventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
