// Package roster generates fair weekly duty rosters. The algorithm splits the
// assignable days of a week evenly across participants, rotates which
// participants absorb the remainder from week to week, and shuffles the final
// day order with a seeded generator so output is reproducible per week.
package roster

import (
	"errors"
	"math/rand"
	"time"
)

// DayOffLabel is used for skip days that have no configured replacement label.
const DayOffLabel = "DAY OFF"

// maxShuffleAttempts bounds the adjacency-avoidance loop. Avoiding the same
// person on two consecutive days is best effort: with one participant, or a
// heavily skewed participant/day ratio, a violation-free order may not exist.
const maxShuffleAttempts = 1000

// Days holds the canonical weekday labels in week order (ISO, Monday first).
var Days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// ErrNoParticipants is returned when a roster is requested for an empty
// participant list.
var ErrNoParticipants = errors.New("at least one participant is required")

// Assignment pairs a weekday label with the person (or skip label) on duty.
type Assignment struct {
	Day      string
	Assignee string
}

// Week is a full weekly roster: exactly one assignment per weekday, in
// canonical day order.
type Week []Assignment

// WeekSchedule is one week's roster anchored to calendar dates. WeekStart is
// the Monday and WeekEnd the Sunday of the week.
type WeekSchedule struct {
	WeekStart time.Time
	WeekEnd   time.Time
	Roster    Week
}

// ComputeWeekRoster builds the roster for a single week.
//
// weekOffset rotates which participants receive the remainder days and seeds
// the shuffle; any non-negative value is accepted (the rotation index is
// reduced mod len(participants) internally). skipDays maps a weekday label to
// its replacement label; a day present with an empty label gets DayOffLabel.
// The result always has one entry per weekday in canonical order.
func ComputeWeekRoster(participants []string, weekOffset int, skipDays map[string]string) (Week, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	assignable := make([]string, 0, len(Days))
	for _, day := range Days {
		if _, skipped := skipDays[day]; !skipped {
			assignable = append(assignable, day)
		}
	}

	n := len(participants)
	total := len(assignable)

	week := make(Week, 0, len(Days))
	if total == 0 {
		for _, day := range Days {
			week = append(week, Assignment{Day: day, Assignee: skipLabel(skipDays, day)})
		}
		return week, nil
	}

	base := total / n
	extra := total % n

	// Rotate the participant order so the remainder days move one position
	// per week.
	order := make([]string, n)
	for i := range order {
		order[i] = participants[(weekOffset+i)%n]
	}

	flat := make([]string, 0, total)
	for idx, name := range order {
		count := base
		if idx < extra {
			count++
		}
		for i := 0; i < count; i++ {
			flat = append(flat, name)
		}
	}

	// A generator scoped to this call keeps results reproducible for a given
	// weekOffset and keeps concurrent callers independent.
	rng := rand.New(rand.NewSource(int64(weekOffset)))
	rng.Shuffle(len(flat), func(i, j int) {
		flat[i], flat[j] = flat[j], flat[i]
	})
	for attempt := 0; attempt < maxShuffleAttempts && hasAdjacentDuplicate(flat); attempt++ {
		rng.Shuffle(len(flat), func(i, j int) {
			flat[i], flat[j] = flat[j], flat[i]
		})
	}

	next := 0
	for _, day := range Days {
		if _, skipped := skipDays[day]; skipped {
			week = append(week, Assignment{Day: day, Assignee: skipLabel(skipDays, day)})
			continue
		}
		week = append(week, Assignment{Day: day, Assignee: flat[next]})
		next++
	}

	return week, nil
}

// ComputeMultiWeekRosters builds weekCount consecutive weekly rosters starting
// from the week that contains start. The first week's offset is derived from
// start's ISO week number as (week-1) mod len(participants); each following
// week advances the offset by one.
func ComputeMultiWeekRosters(participants []string, start time.Time, weekCount int, skipDays map[string]string) ([]WeekSchedule, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	n := len(participants)
	_, isoWeek := start.ISOWeek()
	baseOffset := (isoWeek - 1) % n
	monday := StartOfWeek(start)

	schedules := make([]WeekSchedule, 0, weekCount)
	for i := 0; i < weekCount; i++ {
		week, err := ComputeWeekRoster(participants, (baseOffset+i)%n, skipDays)
		if err != nil {
			return nil, err
		}
		weekStart := monday.AddDate(0, 0, 7*i)
		schedules = append(schedules, WeekSchedule{
			WeekStart: weekStart,
			WeekEnd:   weekStart.AddDate(0, 0, 6),
			Roster:    week,
		})
	}

	return schedules, nil
}

// StartOfWeek returns the Monday of the week containing t, at midnight in t's
// location.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday is 0 in time.Weekday, 7 in ISO
		weekday = 7
	}
	monday := t.AddDate(0, 0, -(weekday - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// WeekOffset derives the rotation offset used for the week containing t, as
// (ISO week - 1) mod participantCount.
func WeekOffset(t time.Time, participantCount int) int {
	_, isoWeek := t.ISOWeek()
	return (isoWeek - 1) % participantCount
}

func skipLabel(skipDays map[string]string, day string) string {
	if label := skipDays[day]; label != "" {
		return label
	}
	return DayOffLabel
}

func hasAdjacentDuplicate(names []string) bool {
	for i := 1; i < len(names); i++ {
		if names[i] == names[i-1] {
			return true
		}
	}
	return false
}
