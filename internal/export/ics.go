// Package export serializes multi-week rosters for external consumption:
// iCalendar for calendar apps and CSV for spreadsheets.
package export

import (
	"fmt"
	"io"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/dapoades/slack-roster-bot/internal/roster"
)

// WriteICS emits one all-day event per assigned day. Skip days carry a label
// instead of a person and are left out of the calendar.
func WriteICS(w io.Writer, schedules []roster.WeekSchedule, skipDays map[string]string) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//slack-roster-bot//EN")

	now := time.Now().UTC()
	for _, schedule := range schedules {
		for i, assignment := range schedule.Roster {
			if _, skipped := skipDays[assignment.Day]; skipped {
				continue
			}

			date := schedule.WeekStart.AddDate(0, 0, i)
			event := cal.AddEvent(fmt.Sprintf("%s-duty@slack-roster-bot", date.Format("20060102")))
			event.SetDtStampTime(now)
			event.SetAllDayStartAt(date)
			event.SetAllDayEndAt(date.AddDate(0, 0, 1))
			event.SetSummary(fmt.Sprintf("Duty: %s", assignment.Assignee))
		}
	}

	return cal.SerializeTo(w)
}
