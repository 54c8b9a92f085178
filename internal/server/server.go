package server

import (
	"fmt"
	"net/http"

	"levelup/backend/internal/auth"
	"levelup/backend/internal/handler"
	"levelup/backend/internal/report"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "levelup/backend/docs" // registers the generated swagger doc

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter builds the gin engine with every route of the API.
func NewRouter() (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), gin.LoggerWithFormatter(accessLogFormat))

	templates, err := report.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse report templates: %w", err)
	}
	router.SetHTMLTemplate(templates)

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Event routes (protected)
	eventRoutes := router.Group("/events")
	eventRoutes.Use(auth.AuthMiddleware())
	{
		eventRoutes.POST("", handler.CreateEvent)
		eventRoutes.GET("", handler.GetEvents)
		eventRoutes.GET("/:id", handler.GetEventByID)
		eventRoutes.PUT("/:id", handler.UpdateEvent)
		eventRoutes.DELETE("/:id", handler.DeleteEvent)
		eventRoutes.POST("/:id/signup", handler.SignupEvent)
		eventRoutes.DELETE("/:id/signup", handler.LeaveEvent)
		eventRoutes.GET("/:id/stream", handler.StreamEvent)
	}

	router.GET("/profile", auth.AuthMiddleware(), handler.GetProfile)

	// Game catalog: reads are public, writes need a gamer
	gameRoutes := router.Group("/games")
	{
		gameRoutes.GET("", auth.OptionalAuthMiddleware(), handler.GetGames)
		gameRoutes.GET("/:id", auth.OptionalAuthMiddleware(), handler.GetGameByID)
		gameRoutes.POST("", auth.AuthMiddleware(), handler.CreateGame)
		gameRoutes.PUT("/:id", auth.AuthMiddleware(), handler.UpdateGame)
		gameRoutes.DELETE("/:id", auth.AuthMiddleware(), handler.DeleteGame)
	}

	gameTypeRoutes := router.Group("/gametypes")
	{
		gameTypeRoutes.GET("", handler.GetGameTypes)
		gameTypeRoutes.POST("", auth.AuthMiddleware(), auth.StaffMiddleware(), handler.CreateGameType)
	}

	// Reports
	router.GET("/reports/usereventlist", handler.GetUserEventReport)

	return router, nil
}
