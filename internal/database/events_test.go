package database

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"levelup/backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open("sqlite", ":memory:", logger.Silent)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func createTestGamer(t *testing.T, db *gorm.DB, username string) *models.Gamer {
	t.Helper()
	gamer := &models.Gamer{
		User: models.User{Username: username, FirstName: username, LastName: "Tester"},
		Bio:  "Love those gamez!!",
	}
	if err := db.Create(gamer).Error; err != nil {
		t.Fatalf("Failed to create gamer %s: %v", username, err)
	}
	return gamer
}

func createTestGame(t *testing.T, db *gorm.DB, owner *models.Gamer, title string) *models.Game {
	t.Helper()
	gameType := models.GameType{Label: fmt.Sprintf("type for %s", title)}
	if err := db.Create(&gameType).Error; err != nil {
		t.Fatalf("Failed to create game type: %v", err)
	}
	game := &models.Game{
		GameTypeID:      gameType.ID,
		GamerID:         owner.ID,
		Title:           title,
		Maker:           "Hasbro",
		NumberOfPlayers: 5,
		SkillLevel:      2,
	}
	if err := db.Create(game).Error; err != nil {
		t.Fatalf("Failed to create game %s: %v", title, err)
	}
	return game
}

func createTestEvent(t *testing.T, db *gorm.DB, game *models.Game, organizer *models.Gamer) *models.Event {
	t.Helper()
	event := &models.Event{
		GameID:      game.ID,
		OrganizerID: organizer.ID,
		Description: "Game night",
		Date:        datatypes.Date(time.Date(2021, 12, 23, 0, 0, 0, 0, time.UTC)),
		Time:        datatypes.NewTime(12, 30, 0, 0),
	}
	if err := db.Create(event).Error; err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}
	return event
}

func countAttendees(t *testing.T, db *gorm.DB, eventID uint) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.EventGamer{}).Where("event_id = ?", eventID).Count(&count).Error; err != nil {
		t.Fatalf("count attendees: %v", err)
	}
	return count
}

func TestAddAttendeeIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	gamer := createTestGamer(t, db, "steve")
	game := createTestGame(t, db, gamer, "Monopoly")
	event := createTestEvent(t, db, game, gamer)

	if got := countAttendees(t, db, event.ID); got != 0 {
		t.Fatalf("attendees before signup got = %d, want 0", got)
	}

	for i := 0; i < 2; i++ {
		if err := AddAttendee(db, event.ID, gamer.ID); err != nil {
			t.Fatalf("AddAttendee() call %d error = %v", i+1, err)
		}
	}

	if got := countAttendees(t, db, event.ID); got != 1 {
		t.Errorf("attendees after duplicate signup got = %d, want 1", got)
	}
}

func TestRemoveAttendee(t *testing.T) {
	db := setupTestDB(t)
	steve := createTestGamer(t, db, "steve")
	joe := createTestGamer(t, db, "joe")
	game := createTestGame(t, db, steve, "Monopoly")
	event := createTestEvent(t, db, game, steve)

	for _, g := range []*models.Gamer{steve, joe} {
		if err := AddAttendee(db, event.ID, g.ID); err != nil {
			t.Fatalf("AddAttendee() error = %v", err)
		}
	}

	t.Run("Removes only the given gamer", func(t *testing.T) {
		if err := RemoveAttendee(db, event.ID, steve.ID); err != nil {
			t.Fatalf("RemoveAttendee() error = %v", err)
		}
		var remaining []models.EventGamer
		db.Where("event_id = ?", event.ID).Find(&remaining)
		if len(remaining) != 1 || remaining[0].GamerID != joe.ID {
			t.Errorf("remaining attendees got = %+v, want only gamer %d", remaining, joe.ID)
		}
	})

	t.Run("Removing an absent gamer is a no-op", func(t *testing.T) {
		if err := RemoveAttendee(db, event.ID, steve.ID); err != nil {
			t.Fatalf("RemoveAttendee() for absent gamer error = %v", err)
		}
		if got := countAttendees(t, db, event.ID); got != 1 {
			t.Errorf("attendees got = %d, want 1", got)
		}
	})
}

func TestAttendanceFor(t *testing.T) {
	db := setupTestDB(t)
	steve := createTestGamer(t, db, "steve")
	joe := createTestGamer(t, db, "joe")
	game := createTestGame(t, db, steve, "Monopoly")
	full := createTestEvent(t, db, game, steve)
	half := createTestEvent(t, db, game, steve)
	empty := createTestEvent(t, db, game, steve)

	AddAttendee(db, full.ID, steve.ID)
	AddAttendee(db, full.ID, joe.ID)
	AddAttendee(db, half.ID, joe.ID)

	attendance, err := AttendanceFor(db, []uint{full.ID, half.ID, empty.ID}, steve.ID)
	if err != nil {
		t.Fatalf("AttendanceFor() error = %v", err)
	}

	if got := attendance[full.ID]; got.AttendeesCount != 2 || !got.Joined {
		t.Errorf("full event attendance got = %+v, want count 2 and joined", got)
	}
	if got := attendance[half.ID]; got.AttendeesCount != 1 || got.Joined {
		t.Errorf("half event attendance got = %+v, want count 1 and not joined", got)
	}
	if _, ok := attendance[empty.ID]; ok {
		t.Errorf("empty event should have no attendance entry")
	}
}

func TestDeleteEvent(t *testing.T) {
	db := setupTestDB(t)
	gamer := createTestGamer(t, db, "steve")
	game := createTestGame(t, db, gamer, "Monopoly")
	event := createTestEvent(t, db, game, gamer)
	AddAttendee(db, event.ID, gamer.ID)

	if err := DeleteEvent(db, event.ID); err != nil {
		t.Fatalf("DeleteEvent() error = %v", err)
	}
	if exists, _ := EventExists(db, event.ID); exists {
		t.Errorf("event %d still exists after delete", event.ID)
	}
	if got := countAttendees(t, db, event.ID); got != 0 {
		t.Errorf("attendee rows after delete got = %d, want 0", got)
	}

	if err := DeleteEvent(db, event.ID); !errors.Is(err, ErrEventNotFound) {
		t.Errorf("DeleteEvent() second call error = %v, want ErrEventNotFound", err)
	}
}

func TestDeleteGameCascades(t *testing.T) {
	db := setupTestDB(t)
	gamer := createTestGamer(t, db, "steve")
	game := createTestGame(t, db, gamer, "Monopoly")
	other := createTestGame(t, db, gamer, "Catan")
	doomed := createTestEvent(t, db, game, gamer)
	kept := createTestEvent(t, db, other, gamer)
	AddAttendee(db, doomed.ID, gamer.ID)
	AddAttendee(db, kept.ID, gamer.ID)

	if err := DeleteGame(db, game.ID); err != nil {
		t.Fatalf("DeleteGame() error = %v", err)
	}
	if exists, _ := EventExists(db, doomed.ID); exists {
		t.Errorf("event of deleted game still exists")
	}
	if got := countAttendees(t, db, doomed.ID); got != 0 {
		t.Errorf("attendee rows of deleted game's event got = %d, want 0", got)
	}
	if exists, _ := EventExists(db, kept.ID); !exists {
		t.Errorf("event of another game was deleted")
	}
	if got := countAttendees(t, db, kept.ID); got != 1 {
		t.Errorf("attendee rows of kept event got = %d, want 1", got)
	}

	if err := DeleteGame(db, game.ID); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("DeleteGame() second call error = %v, want ErrGameNotFound", err)
	}
}
