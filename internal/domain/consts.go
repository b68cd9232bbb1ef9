package domain

// ISO 8601 weekday constants
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// WeekdayNumbers maps lowercase weekday names and common abbreviations to ISO
// numbers, for command parsing
var WeekdayNumbers = map[string]int{
	"monday":    Monday,
	"mon":       Monday,
	"tuesday":   Tuesday,
	"tue":       Tuesday,
	"wednesday": Wednesday,
	"wed":       Wednesday,
	"thursday":  Thursday,
	"thu":       Thursday,
	"friday":    Friday,
	"fri":       Friday,
	"saturday":  Saturday,
	"sat":       Saturday,
	"sunday":    Sunday,
	"sun":       Sunday,
}

// DefaultPostingDay is when the weekly roster is announced (Monday)
const DefaultPostingDay = Monday

// DefaultPostingTime is the default announcement time in HH:MM (UTC)
const DefaultPostingTime = "09:00"

// DefaultWeeksAhead is how many weeks previews and exports cover by default
const DefaultWeeksAhead = 4
