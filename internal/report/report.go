// Package report builds the attendance-by-gamer report.
package report

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TemplateName is the name the report page is registered under.
const TemplateName = "users/events_with_gamer.html"

//go:embed templates/users/*.html
var templateFS embed.FS

const userEventsQuery = `
SELECT
	e.date,
	e.time,
	u.first_name,
	u.last_name,
	g.id AS gamer_id,
	ga.title AS game_title
FROM events e
JOIN event_gamers eg ON e.id = eg.event_id
JOIN gamers g ON eg.gamer_id = g.id
JOIN users u ON u.id = g.user_id
JOIN games ga ON e.game_id = ga.id
ORDER BY e.date, e.time, e.id, g.id`

// Row is one (event, attending gamer) pair as returned by the report query.
type Row struct {
	Date      datatypes.Date
	Time      datatypes.Time
	FirstName string
	LastName  string
	GamerID   uint
	GameTitle string
}

// Event is one attended event within a gamer's group.
type Event struct {
	GameTitle string
	Date      string
	Time      string
}

// GamerEvents groups the events one gamer attends.
type GamerEvents struct {
	GamerID  uint
	FullName string
	Events   []Event
}

// FetchRows runs the report query.
func FetchRows(db *gorm.DB) ([]Row, error) {
	var rows []Row
	if err := db.Raw(userEventsQuery).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("user events query: %w", err)
	}
	return rows, nil
}

// GroupByGamer folds flat rows into one group per gamer.
// Gamers keep the order they are first seen in; events keep row order.
func GroupByGamer(rows []Row) []GamerEvents {
	groups := []GamerEvents{}
	index := make(map[uint]int)

	for _, row := range rows {
		event := Event{
			GameTitle: row.GameTitle,
			Date:      time.Time(row.Date).Format(time.DateOnly),
			Time:      row.Time.String(),
		}

		if i, ok := index[row.GamerID]; ok {
			groups[i].Events = append(groups[i].Events, event)
			continue
		}

		index[row.GamerID] = len(groups)
		groups = append(groups, GamerEvents{
			GamerID:  row.GamerID,
			FullName: row.FirstName + " " + row.LastName,
			Events:   []Event{event},
		})
	}
	return groups
}

// UserEvents runs the report query and groups the result by gamer.
func UserEvents(db *gorm.DB) ([]GamerEvents, error) {
	rows, err := FetchRows(db)
	if err != nil {
		return nil, err
	}
	return GroupByGamer(rows), nil
}

// Templates parses the embedded report templates.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/users/*.html")
}
