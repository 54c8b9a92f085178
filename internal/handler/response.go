package handler

import (
	"strconv"
	"time"

	"gorm.io/datatypes"
)

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// ReasonResponse is returned when a payload fails validation.
type ReasonResponse struct {
	Reason string `json:"reason" example:"date: parsing time \"x\" as \"2006-01-02\": cannot parse"`
}

// MessageResponse carries the message of a failed event operation.
type MessageResponse struct {
	Message string `json:"message" example:"Event does not exist."`
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func formatDate(d datatypes.Date) string {
	return time.Time(d).Format(time.DateOnly)
}

func parseDate(s string) (datatypes.Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return datatypes.Date{}, err
	}
	return datatypes.Date(t), nil
}

// parseClock accepts "15:04:05" and "15:04".
func parseClock(s string) (datatypes.Time, error) {
	t, err := time.Parse(time.TimeOnly, s)
	if err != nil {
		var shortErr error
		if t, shortErr = time.Parse("15:04", s); shortErr != nil {
			return 0, err
		}
	}
	return datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0), nil
}
