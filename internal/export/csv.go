package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dapoades/slack-roster-bot/internal/roster"
)

// WriteCSV emits one row per day across all weeks, skip days included.
func WriteCSV(w io.Writer, schedules []roster.WeekSchedule) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"week_start", "week_end", "day", "assignee"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, schedule := range schedules {
		for _, assignment := range schedule.Roster {
			row := []string{
				schedule.WeekStart.Format("2006-01-02"),
				schedule.WeekEnd.Format("2006-01-02"),
				assignment.Day,
				assignment.Assignee,
			}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write csv row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}
