package handler

import (
	"net/http"
	"strings"

	"levelup/backend/internal/database"
	"levelup/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type GameTypeInput struct {
	Label string `json:"label" binding:"required" example:"Board game"`
}

type GameTypeResponse struct {
	ID    uint   `json:"id"`
	Label string `json:"label"`
}

func newGameTypeResponse(gameType models.GameType) GameTypeResponse {
	return GameTypeResponse{
		ID:    gameType.ID,
		Label: gameType.Label,
	}
}

// CreateGameType godoc
// @Summary      Create a new game type
// @Description  Adds a game type to the catalog. Staff only.
// @Tags         gametypes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameTypeInput true "Game Type Info"
// @Success      201  {object}  GameTypeResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse "Staff access required"
// @Failure      409  {object}  ErrorResponse "Game type already exists"
// @Router       /gametypes [post]
func CreateGameType(c *gin.Context) {
	var input GameTypeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gameType := models.GameType{Label: strings.TrimSpace(input.Label)}
	if err := database.DB.Create(&gameType).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Game type already exists or another error occurred"})
		return
	}

	c.JSON(http.StatusCreated, newGameTypeResponse(gameType))
}

// GetGameTypes godoc
// @Summary      Get all game types
// @Description  Retrieves a list of all game types.
// @Tags         gametypes
// @Produce      json
// @Success      200  {array}   GameTypeResponse
// @Router       /gametypes [get]
func GetGameTypes(c *gin.Context) {
	var gameTypes []models.GameType
	if err := database.DB.Order("id").Find(&gameTypes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve game types"})
		return
	}

	response := make([]GameTypeResponse, 0, len(gameTypes))
	for _, gameType := range gameTypes {
		response = append(response, newGameTypeResponse(gameType))
	}
	c.JSON(http.StatusOK, response)
}
