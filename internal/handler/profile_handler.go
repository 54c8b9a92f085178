package handler

import (
	"errors"
	"net/http"

	"levelup/backend/internal/auth"
	"levelup/backend/internal/database"
	"levelup/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

type ProfileUserResponse struct {
	FirstName string `json:"first_name" example:"Steve"`
	LastName  string `json:"last_name" example:"Brownlee"`
	Username  string `json:"username" example:"steve"`
}

type ProfileGamerResponse struct {
	User ProfileUserResponse `json:"user"`
	Bio  string              `json:"bio" example:"Love those gamez!!"`
}

type ProfileGameResponse struct {
	Title string `json:"title" example:"Monopoly"`
}

type ProfileEventResponse struct {
	ID          uint                `json:"id"`
	Game        ProfileGameResponse `json:"game"`
	Description string              `json:"description"`
	Date        string              `json:"date" example:"2021-12-23"`
	Time        string              `json:"time" example:"12:00:00"`
}

// ProfileResponse is the caller's profile with the events they attend and host.
type ProfileResponse struct {
	Gamer     ProfileGamerResponse   `json:"gamer"`
	Attending []ProfileEventResponse `json:"attending"`
	Hosting   []ProfileEventResponse `json:"hosting"`
}

func newProfileEvents(events []models.Event) []ProfileEventResponse {
	response := make([]ProfileEventResponse, 0, len(events))
	for _, event := range events {
		response = append(response, ProfileEventResponse{
			ID:          event.ID,
			Game:        ProfileGameResponse{Title: event.Game.Title},
			Description: event.Description,
			Date:        formatDate(event.Date),
			Time:        event.Time.String(),
		})
	}
	return response
}

// endregion

func orderBySchedule(db *gorm.DB) *gorm.DB {
	return db.Order("events.date, events.time, events.id")
}

// GetProfile godoc
// @Summary      Get the caller's profile
// @Description  Returns the caller's gamer profile, the events they attend and the events they host.
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ProfileResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /profile [get]
func GetProfile(c *gin.Context) {
	var gamer models.Gamer
	err := database.DB.
		Preload("User").
		Preload("Attending", orderBySchedule).
		Preload("Attending.Game").
		First(&gamer, auth.GamerID(c)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Gamer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	var hosting []models.Event
	if err := orderBySchedule(database.DB.Preload("Game")).Where("organizer_id = ?", gamer.ID).Find(&hosting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load hosted events"})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{
		Gamer: ProfileGamerResponse{
			User: ProfileUserResponse{
				FirstName: gamer.User.FirstName,
				LastName:  gamer.User.LastName,
				Username:  gamer.User.Username,
			},
			Bio: gamer.Bio,
		},
		Attending: newProfileEvents(gamer.Attending),
		Hosting:   newProfileEvents(hosting),
	})
}
