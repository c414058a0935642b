package modelclient

import (
	"fmt"
	"time"
)

// buildTimeContext creates a temporal context string for LLM
func buildTimeContext(timezone string, now time.Time) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}
	now = now.In(loc)

	// Week boundaries (Monday-Sunday)
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	weekStart := now.AddDate(0, 0, -(weekday - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, -1)

	return fmt.Sprintf(
		TimeContextTemplate,
		now.Format(DateFormatISO),
		now.Weekday().String(),
		weekStart.Format(DateFormatISO),
		weekEnd.Format(DateFormatISO),
		monthStart.Format(DateFormatISO),
		monthEnd.Format(DateFormatISO),
	)
}
