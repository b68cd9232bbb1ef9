package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/dapoades/slack-roster-bot/internal/roster"
)

// formatWeek renders one week's roster as a Slack message.
func formatWeek(week roster.Week, weekStart, weekEnd time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🧹 *Weekly Roster: %s to %s*\n\n",
		weekStart.Format("2006-01-02"), weekEnd.Format("2006-01-02"))

	for _, a := range week {
		fmt.Fprintf(&b, "• *%s*: %s\n", a.Day, a.Assignee)
	}

	return b.String()
}

// formatSchedules renders a multi-week preview as a Slack message.
func formatSchedules(schedules []roster.WeekSchedule) string {
	var b strings.Builder

	b.WriteString("🗓️ *Roster Preview*\n")
	for _, s := range schedules {
		fmt.Fprintf(&b, "\n*Week %s to %s*\n",
			s.WeekStart.Format("2006-01-02"), s.WeekEnd.Format("2006-01-02"))
		for _, a := range s.Roster {
			fmt.Fprintf(&b, "• %s: %s\n", a.Day, a.Assignee)
		}
	}

	return b.String()
}

// FormatWeek is the exported rendering used by the handlers.
func FormatWeek(week roster.Week, weekStart, weekEnd time.Time) string {
	return formatWeek(week, weekStart, weekEnd)
}

// FormatSchedules is the exported preview rendering used by the handlers.
func FormatSchedules(schedules []roster.WeekSchedule) string {
	return formatSchedules(schedules)
}
