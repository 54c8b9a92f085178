package handler

import (
	"errors"
	"net/http"
	"strings"

	"levelup/backend/internal/auth"
	"levelup/backend/internal/database"
	"levelup/backend/internal/hub"
	"levelup/backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// region --- DTOs ---

type GameInput struct {
	Title           string `json:"title" binding:"required" example:"Monopoly"`
	Maker           string `json:"maker" binding:"required" example:"Hasbro"`
	NumberOfPlayers int    `json:"number_of_players" binding:"required,min=1" example:"5"`
	SkillLevel      int    `json:"skill_level" binding:"required,min=1,max=5" example:"2"`
	GameTypeID      uint   `json:"game_type_id" binding:"required" example:"1"`
}

type GameResponse struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Maker           string `json:"maker"`
	NumberOfPlayers int    `json:"number_of_players"`
	SkillLevel      int    `json:"skill_level"`
	GameTypeID      uint   `json:"game_type_id"`
	GamerID         uint   `json:"gamer_id"`
	IsOwner         bool   `json:"is_owner"`
}

func newGameResponse(game models.Game, viewerGamerID uint) GameResponse {
	return GameResponse{
		ID:              game.ID,
		Title:           game.Title,
		Maker:           game.Maker,
		NumberOfPlayers: game.NumberOfPlayers,
		SkillLevel:      game.SkillLevel,
		GameTypeID:      game.GameTypeID,
		GamerID:         game.GamerID,
		IsOwner:         viewerGamerID != 0 && game.GamerID == viewerGamerID,
	}
}

// PaginatedGameResponse defines the structure for a paginated list of games.
type PaginatedGameResponse struct {
	Data []GameResponse `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// endregion

func gameTypeExists(id uint) (bool, error) {
	var count int64
	err := database.DB.Model(&models.GameType{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// loadOwnedGame loads a game and checks the caller owns it, writing the error response itself.
func loadOwnedGame(c *gin.Context) (models.Game, bool) {
	var game models.Game
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return game, false
	}

	if err := database.DB.First(&game, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load game"})
		}
		return game, false
	}

	if game.GamerID != auth.GamerID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner can change this game"})
		return game, false
	}
	return game, true
}

// CreateGame godoc
// @Summary      Create a new game
// @Description  Adds a game to the catalog, owned by the caller.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  GameResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /games [post]
func CreateGame(c *gin.Context) {
	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := gameTypeExists(input.GameTypeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check game type"})
		return
	}
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game type does not exist"})
		return
	}

	game := models.Game{
		GameTypeID:      input.GameTypeID,
		GamerID:         auth.GamerID(c),
		Title:           input.Title,
		Maker:           input.Maker,
		NumberOfPlayers: input.NumberOfPlayers,
		SkillLevel:      input.SkillLevel,
	}

	if err := database.DB.Create(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}

	c.JSON(http.StatusCreated, newGameResponse(game, game.GamerID))
}

// UpdateGame godoc
// @Summary      Update a game (owner only)
// @Description  Updates a game's details. Only the gamer who added the game can change it.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int       true  "Game ID"
// @Param        input body      GameInput true  "New Game Info"
// @Success      200   {object}  GameResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse "Only the owner can change this game"
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Router       /games/{id} [put]
func UpdateGame(c *gin.Context) {
	game, ok := loadOwnedGame(c)
	if !ok {
		return
	}

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exists, err := gameTypeExists(input.GameTypeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check game type"})
		return
	}
	if !exists {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Game type does not exist"})
		return
	}

	game.Title = input.Title
	game.Maker = input.Maker
	game.NumberOfPlayers = input.NumberOfPlayers
	game.SkillLevel = input.SkillLevel
	game.GameTypeID = input.GameTypeID

	if err := database.DB.Save(&game).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game, auth.GamerID(c)))
}

// DeleteGame godoc
// @Summary      Delete a game (owner only)
// @Description  Deletes a game together with its events and their attendee lists.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      204
// @Failure      403 {object} ErrorResponse "Only the owner can change this game"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [delete]
func DeleteGame(c *gin.Context) {
	game, ok := loadOwnedGame(c)
	if !ok {
		return
	}

	var eventIDs []uint
	database.DB.Model(&models.Event{}).Where("game_id = ?", game.ID).Pluck("id", &eventIDs)

	if err := database.DeleteGame(database.DB, game.ID); err != nil {
		if errors.Is(err, database.ErrGameNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}

	for _, id := range eventIDs {
		hub.GlobalHub.Publish(hub.EventDeleted, id, 0)
	}
	c.Status(http.StatusNoContent)
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves a game from the catalog.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func GetGameByID(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(game, auth.GamerID(c)))
}

// GetGames godoc
// @Summary      Get a list of games
// @Description  Retrieves a paginated list of games, optionally filtered by game type and title.
// @Tags         games
// @Produce      json
// @Param        q     query     string  false  "Search query for game title"
// @Param        type  query     int     false  "Game type ID"
// @Param        page  query     int     false  "Page number" default(1)
// @Param        limit query     int     false  "Items per page" default(10)
// @Success      200 {object} PaginatedGameResponse
// @Failure      400 {object} ErrorResponse
// @Router       /games [get]
func GetGames(c *gin.Context) {
	page, limit := pageParams(c)

	dbQuery := database.DB.Model(&models.Game{}).Order("id")

	if typeStr := c.Query("type"); typeStr != "" {
		typeID, err := parseID(typeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game type ID"})
			return
		}
		dbQuery = dbQuery.Where("game_type_id = ?", typeID)
	}

	if searchQuery := strings.TrimSpace(c.Query("q")); searchQuery != "" {
		dbQuery = dbQuery.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(searchQuery)+"%")
	}

	games, err := Paginate[models.Game](dbQuery, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve games"})
		return
	}

	viewer := auth.GamerID(c)
	response := make([]GameResponse, 0, len(games.Data))
	for _, game := range games.Data {
		response = append(response, newGameResponse(game, viewer))
	}

	c.JSON(http.StatusOK, NewPaginatedResponse(response, games.Meta.TotalItems, page, limit))
}
