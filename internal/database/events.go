package database

import (
	"errors"
	"fmt"

	"levelup/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrGameNotFound  = errors.New("game not found")
)

// Attendance holds the attendee count of an event and whether a given gamer is among them.
type Attendance struct {
	EventID        uint
	AttendeesCount int64
	Joined         bool
}

// EventExists reports whether an event with the given id exists.
func EventExists(db *gorm.DB, eventID uint) (bool, error) {
	var count int64
	if err := db.Model(&models.Event{}).Where("id = ?", eventID).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count event %d: %w", eventID, err)
	}
	return count > 0, nil
}

// AddAttendee signs a gamer up for an event. Signing up twice leaves a single row.
func AddAttendee(db *gorm.DB, eventID, gamerID uint) error {
	row := models.EventGamer{GamerID: gamerID, EventID: eventID}
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("add gamer %d to event %d: %w", gamerID, eventID, err)
	}
	return nil
}

// RemoveAttendee removes a gamer from an event. Removing a gamer who is not signed up is a no-op.
func RemoveAttendee(db *gorm.DB, eventID, gamerID uint) error {
	err := db.Where("event_id = ? AND gamer_id = ?", eventID, gamerID).Delete(&models.EventGamer{}).Error
	if err != nil {
		return fmt.Errorf("remove gamer %d from event %d: %w", gamerID, eventID, err)
	}
	return nil
}

// AttendanceFor returns attendance per event for the given events, keyed by event id.
// Events nobody attends are absent from the map.
func AttendanceFor(db *gorm.DB, eventIDs []uint, gamerID uint) (map[uint]Attendance, error) {
	result := make(map[uint]Attendance, len(eventIDs))
	if len(eventIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		EventID        uint
		AttendeesCount int64
		Joined         int64
	}
	err := db.Model(&models.EventGamer{}).
		Select("event_id, COUNT(*) AS attendees_count, SUM(CASE WHEN gamer_id = ? THEN 1 ELSE 0 END) AS joined", gamerID).
		Where("event_id IN ?", eventIDs).
		Group("event_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count attendees: %w", err)
	}

	for _, r := range rows {
		result[r.EventID] = Attendance{
			EventID:        r.EventID,
			AttendeesCount: r.AttendeesCount,
			Joined:         r.Joined > 0,
		}
	}
	return result, nil
}

// DeleteEvent deletes an event together with its attendee rows.
// It returns ErrEventNotFound when no event has the given id.
func DeleteEvent(db *gorm.DB, eventID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", eventID).Delete(&models.EventGamer{}).Error; err != nil {
			return fmt.Errorf("delete attendees of event %d: %w", eventID, err)
		}
		result := tx.Delete(&models.Event{}, eventID)
		if result.Error != nil {
			return fmt.Errorf("delete event %d: %w", eventID, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrEventNotFound
		}
		return nil
	})
}

// DeleteGame deletes a game, its events and their attendee rows.
// It returns ErrGameNotFound when no game has the given id.
func DeleteGame(db *gorm.DB, gameID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		events := tx.Model(&models.Event{}).Select("id").Where("game_id = ?", gameID)
		if err := tx.Where("event_id IN (?)", events).Delete(&models.EventGamer{}).Error; err != nil {
			return fmt.Errorf("delete attendees of game %d: %w", gameID, err)
		}
		if err := tx.Where("game_id = ?", gameID).Delete(&models.Event{}).Error; err != nil {
			return fmt.Errorf("delete events of game %d: %w", gameID, err)
		}
		result := tx.Delete(&models.Game{}, gameID)
		if result.Error != nil {
			return fmt.Errorf("delete game %d: %w", gameID, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrGameNotFound
		}
		return nil
	})
}
