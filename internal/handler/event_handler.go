package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"levelup/backend/internal/auth"
	"levelup/backend/internal/database"
	"levelup/backend/internal/hub"
	"levelup/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// region --- DTOs ---

// EventInput is the payload for creating and updating an event.
// The game may be given as gameId or game_id.
type EventInput struct {
	Date        string `json:"date" binding:"required" example:"2021-12-23"`
	Time        string `json:"time" binding:"required" example:"12:00:00"`
	GameID      uint   `json:"gameId" example:"1"`
	GameIDAlt   uint   `json:"game_id" swaggerignore:"true"`
	Description string `json:"description" binding:"required" example:"Xmas Eve Eve"`
	OrganizerID uint   `json:"organizer_id" example:"1"`
}

func (in EventInput) gameID() uint {
	if in.GameID != 0 {
		return in.GameID
	}
	return in.GameIDAlt
}

type eventFields struct {
	date   datatypes.Date
	time   datatypes.Time
	gameID uint
}

// fieldError is a payload problem reported to the client as a reason.
type fieldError struct {
	field string
	err   error
}

func (e *fieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.field, e.err)
}

// validate parses the schedule and checks the game exists.
// Payload problems are returned as *fieldError; anything else is a database failure.
func (in EventInput) validate() (eventFields, error) {
	var fields eventFields
	var err error
	if fields.date, err = parseDate(in.Date); err != nil {
		return fields, &fieldError{"date", err}
	}
	if fields.time, err = parseClock(in.Time); err != nil {
		return fields, &fieldError{"time", err}
	}
	fields.gameID = in.gameID()
	if fields.gameID == 0 {
		return fields, &fieldError{"gameId", errors.New("this field is required")}
	}

	var count int64
	if err := database.DB.Model(&models.Game{}).Where("id = ?", fields.gameID).Count(&count).Error; err != nil {
		return fields, err
	}
	if count == 0 {
		return fields, &fieldError{"gameId", fmt.Errorf("game %d does not exist", fields.gameID)}
	}
	return fields, nil
}

// abortInvalid writes the response for a failed validate call.
func abortInvalid(c *gin.Context, err error) {
	var fe *fieldError
	if errors.As(err, &fe) {
		c.JSON(http.StatusBadRequest, gin.H{"reason": fe.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
}

type EventUserResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type OrganizerResponse struct {
	ID   uint              `json:"id"`
	User EventUserResponse `json:"user"`
}

type EventGameResponse struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Maker           string `json:"maker"`
	NumberOfPlayers int    `json:"number_of_players"`
	SkillLevel      int    `json:"skill_level"`
	GameType        uint   `json:"game_type"`
	Gamer           uint   `json:"gamer"`
}

// EventResponse is the serialized event. Joined and AttendeesCount are only set by the list endpoint.
type EventResponse struct {
	ID             uint              `json:"id"`
	Date           string            `json:"date" example:"2021-12-23"`
	Time           string            `json:"time" example:"12:00:00"`
	Game           EventGameResponse `json:"game"`
	Organizer      OrganizerResponse `json:"organizer"`
	Description    string            `json:"description"`
	Joined         *bool             `json:"joined"`
	AttendeesCount *int64            `json:"attendees_count"`
}

func newEventResponse(event models.Event) EventResponse {
	return EventResponse{
		ID:   event.ID,
		Date: formatDate(event.Date),
		Time: event.Time.String(),
		Game: EventGameResponse{
			ID:              event.Game.ID,
			Title:           event.Game.Title,
			Maker:           event.Game.Maker,
			NumberOfPlayers: event.Game.NumberOfPlayers,
			SkillLevel:      event.Game.SkillLevel,
			GameType:        event.Game.GameTypeID,
			Gamer:           event.Game.GamerID,
		},
		Organizer: OrganizerResponse{
			ID: event.Organizer.ID,
			User: EventUserResponse{
				FirstName: event.Organizer.User.FirstName,
				LastName:  event.Organizer.User.LastName,
			},
		},
		Description: event.Description,
	}
}

func newListedEventResponse(event models.Event, attendance database.Attendance) EventResponse {
	response := newEventResponse(event)
	joined := attendance.Joined
	count := attendance.AttendeesCount
	response.Joined = &joined
	response.AttendeesCount = &count
	return response
}

// endregion

func loadEvent(id uint) (models.Event, error) {
	var event models.Event
	err := database.DB.Preload("Game").Preload("Organizer.User").First(&event, id).Error
	return event, err
}

// CreateEvent godoc
// @Summary      Create a new event
// @Description  Creates an event for a game, organized by the caller.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body EventInput true "Event Info"
// @Success      201  {object}  EventResponse
// @Failure      400  {object}  ReasonResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /events [post]
func CreateEvent(c *gin.Context) {
	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"reason": err.Error()})
		return
	}

	fields, err := input.validate()
	if err != nil {
		abortInvalid(c, err)
		return
	}

	event := models.Event{
		GameID:      fields.gameID,
		OrganizerID: auth.GamerID(c),
		Description: input.Description,
		Date:        fields.date,
		Time:        fields.time,
	}
	if err := database.DB.Create(&event).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"reason": err.Error()})
		return
	}

	created, err := loadEvent(event.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, newEventResponse(created))
}

// GetEventByID godoc
// @Summary      Get a single event
// @Description  Retrieves an event with its organizer and game. Any failure, including a missing event, is a server error.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Event ID"
// @Success      200 {object} EventResponse
// @Failure      500 {object} MessageResponse
// @Router       /events/{id} [get]
func GetEventByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	event, err := loadEvent(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, newEventResponse(event))
}

// UpdateEvent godoc
// @Summary      Update an event
// @Description  Overwrites date, time, game, description and organizer. The organizer defaults to the caller when organizer_id is omitted.
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int        true  "Event ID"
// @Param        input body      EventInput true  "New Event Info"
// @Success      204
// @Failure      400   {object}  ReasonResponse
// @Failure      404   {object}  MessageResponse "Event not found"
// @Router       /events/{id} [put]
func UpdateEvent(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		return
	}

	var event models.Event
	if err := database.DB.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	var input EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"reason": err.Error()})
		return
	}

	fields, err := input.validate()
	if err != nil {
		abortInvalid(c, err)
		return
	}

	// Any authenticated caller may reassign the organizer.
	organizerID := auth.GamerID(c)
	if input.OrganizerID != 0 {
		var organizer models.Gamer
		if err := database.DB.First(&organizer, input.OrganizerID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"reason": fmt.Sprintf("organizer_id: gamer %d does not exist", input.OrganizerID)})
			return
		}
		organizerID = organizer.ID
	}

	err = database.DB.Model(&event).Updates(map[string]interface{}{
		"date":         fields.date,
		"time":         fields.time,
		"game_id":      fields.gameID,
		"organizer_id": organizerID,
		"description":  input.Description,
	}).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	hub.GlobalHub.Publish(hub.EventUpdated, event.ID, 0)
	c.Status(http.StatusNoContent)
}

// DeleteEvent godoc
// @Summary      Delete an event
// @Description  Deletes an event and its attendee list.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Event ID"
// @Success      204
// @Failure      404 {object} MessageResponse "Event not found"
// @Failure      500 {object} MessageResponse
// @Router       /events/{id} [delete]
func DeleteEvent(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Event matching query does not exist."})
		return
	}

	if err := database.DeleteEvent(database.DB, id); err != nil {
		if errors.Is(err, database.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event matching query does not exist."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	hub.GlobalHub.Publish(hub.EventDeleted, id, 0)
	c.Status(http.StatusNoContent)
}

// GetEvents godoc
// @Summary      List events
// @Description  Lists all events with their attendee count and whether the caller has joined, optionally filtered by game.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        gameId query int false "Filter by Game ID"
// @Success      200 {array} EventResponse
// @Failure      400 {object} ReasonResponse
// @Router       /events [get]
func GetEvents(c *gin.Context) {
	query := database.DB.Preload("Game").Preload("Organizer.User").Order("date, time, id")

	if gameIDStr, ok := c.GetQuery("gameId"); ok {
		gameID, err := parseID(gameIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"reason": "gameId must be a positive integer"})
			return
		}
		query = query.Where("game_id = ?", gameID)
	}

	var events []models.Event
	if err := query.Find(&events).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	ids := make([]uint, len(events))
	for i, event := range events {
		ids[i] = event.ID
	}
	attendance, err := database.AttendanceFor(database.DB, ids, auth.GamerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	response := make([]EventResponse, 0, len(events))
	for _, event := range events {
		response = append(response, newListedEventResponse(event, attendance[event.ID]))
	}

	c.JSON(http.StatusOK, response)
}

// region --- Signup ---

// signupTarget resolves the event id of a signup request, writing the error response itself.
func signupTarget(c *gin.Context) (uint, bool) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Event does not exist."})
		return 0, false
	}

	exists, err := database.EventExists(database.DB, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return 0, false
	}
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Event does not exist."})
		return 0, false
	}
	return id, true
}

// SignupEvent godoc
// @Summary      Join an event
// @Description  Adds the caller to the event's attendees. Joining twice is harmless.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Event ID"
// @Success      201 {object} map[string]string "{}"
// @Failure      400 {object} MessageResponse "Event does not exist."
// @Failure      500 {object} MessageResponse
// @Router       /events/{id}/signup [post]
func SignupEvent(c *gin.Context) {
	eventID, ok := signupTarget(c)
	if !ok {
		return
	}

	gamerID := auth.GamerID(c)
	if err := database.AddAttendee(database.DB, eventID, gamerID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	hub.GlobalHub.Publish(hub.AttendeeJoined, eventID, gamerID)
	c.JSON(http.StatusCreated, gin.H{})
}

// LeaveEvent godoc
// @Summary      Leave an event
// @Description  Removes the caller from the event's attendees. Leaving an event not joined is a no-op.
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Event ID"
// @Success      204
// @Failure      400 {object} MessageResponse "Event does not exist."
// @Failure      500 {object} MessageResponse
// @Router       /events/{id}/signup [delete]
func LeaveEvent(c *gin.Context) {
	eventID, ok := signupTarget(c)
	if !ok {
		return
	}

	gamerID := auth.GamerID(c)
	if err := database.RemoveAttendee(database.DB, eventID, gamerID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	hub.GlobalHub.Publish(hub.AttendeeLeft, eventID, gamerID)
	c.Status(http.StatusNoContent)
}

// StreamEvent godoc
// @Summary      Stream attendance changes
// @Description  Server-sent events for joins, leaves, updates and deletion of one event.
// @Tags         events
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        id path int true "Event ID"
// @Success      200 {object} hub.Message
// @Failure      404 {object} ErrorResponse "Event not found"
// @Router       /events/{id}/stream [get]
func StreamEvent(c *gin.Context) {
	eventID, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}
	exists, err := database.EventExists(database.DB, eventID)
	if err != nil || !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		return
	}

	client := make(hub.Client, 8)
	hub.GlobalHub.Subscribe(eventID, client)
	defer hub.GlobalHub.Unsubscribe(eventID, client)

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("attendance", string(msg))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// endregion
