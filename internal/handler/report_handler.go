package handler

import (
	"net/http"

	"levelup/backend/internal/database"
	"levelup/backend/internal/report"

	"github.com/gin-gonic/gin"
)

// GetUserEventReport godoc
// @Summary      Events by gamer report
// @Description  Renders an HTML table of attended events grouped by gamer.
// @Tags         reports
// @Produce      html
// @Success      200 {string} string "HTML page"
// @Failure      500 {string} string "Report error"
// @Router       /reports/usereventlist [get]
func GetUserEventReport(c *gin.Context) {
	userEvents, err := report.UserEvents(database.DB)
	if err != nil {
		c.String(http.StatusInternalServerError, "load report error: %v", err)
		return
	}

	c.HTML(http.StatusOK, report.TemplateName, gin.H{
		"user_events": userEvents,
	})
}
