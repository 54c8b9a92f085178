package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"levelup/backend/internal/config"
	"levelup/backend/internal/database"
	"levelup/backend/internal/models"
	"levelup/backend/internal/server"
	"levelup/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "handler-test-secret", TokenTTL: time.Hour}
	os.Exit(m.Run())
}

// setupRouter points the handlers at a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := database.Open("sqlite", ":memory:", logger.Silent)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	database.DB = db
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	router, err := server.NewRouter()
	if err != nil {
		t.Fatalf("NewRouter() error = %v", err)
	}
	return router
}

type testGamer struct {
	gamer *models.Gamer
	token string
}

func createGamer(t *testing.T, username, firstName string, staff bool) testGamer {
	t.Helper()
	gamer := &models.Gamer{
		User: models.User{Username: username, FirstName: firstName, LastName: "Tester", IsStaff: staff},
		Bio:  "Love those gamez!!",
	}
	if err := database.DB.Create(gamer).Error; err != nil {
		t.Fatalf("Failed to create gamer %s: %v", username, err)
	}
	token, err := jwt.GenerateToken(gamer.UserID)
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	return testGamer{gamer: gamer, token: token}
}

func createGameType(t *testing.T, label string) models.GameType {
	t.Helper()
	gameType := models.GameType{Label: label}
	if err := database.DB.Create(&gameType).Error; err != nil {
		t.Fatalf("Failed to create game type: %v", err)
	}
	return gameType
}

func createGame(t *testing.T, owner testGamer, gameType models.GameType, title string) models.Game {
	t.Helper()
	game := models.Game{
		GameTypeID:      gameType.ID,
		GamerID:         owner.gamer.ID,
		Title:           title,
		Maker:           "Hasbro",
		NumberOfPlayers: 5,
		SkillLevel:      2,
	}
	if err := database.DB.Create(&game).Error; err != nil {
		t.Fatalf("Failed to create game %s: %v", title, err)
	}
	return game
}

func createEvent(t *testing.T, game models.Game, organizer testGamer, day int, description string) models.Event {
	t.Helper()
	event := models.Event{
		GameID:      game.ID,
		OrganizerID: organizer.gamer.ID,
		Description: description,
		Date:        datatypes.Date(time.Date(2021, 12, day, 0, 0, 0, 0, time.UTC)),
		Time:        datatypes.NewTime(12, 30, 0, 0),
	}
	if err := database.DB.Create(&event).Error; err != nil {
		t.Fatalf("Failed to create event: %v", err)
	}
	return event
}

func signUp(t *testing.T, event models.Event, gamer testGamer) {
	t.Helper()
	if err := database.AddAttendee(database.DB, event.ID, gamer.gamer.ID); err != nil {
		t.Fatalf("AddAttendee() error = %v", err)
	}
}

// doRequest sends a request through the router, JSON-encoding body when it is not nil.
func doRequest(t *testing.T, router http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}
