package entity

import "time"

// Channel is a Slack channel that has a roster configured.
type Channel struct {
	ID               int64
	SlackChannelID   string
	SlackChannelName string
	SlackTeamID      string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Participant is a member of a channel's roster rotation. DisplayName is what
// appears on the roster; join order defines the rotation order.
type Participant struct {
	ID            int64
	ChannelID     int64
	SlackUserID   string
	SlackUserName string
	DisplayName   string
	IsActive      bool
	JoinedAt      time.Time
}

// RotationConfig holds a channel's posting schedule. PostingDay is an ISO 8601
// weekday (1=Monday) and PostingTime is HH:MM in UTC.
type RotationConfig struct {
	ID          int64
	ChannelID   int64
	PostingDay  int
	PostingTime string
	WeeksAhead  int
	IsEnabled   bool
}

// SkipDay excludes an ISO weekday from a channel's rotation. An empty Label
// means the day renders with the default day-off sentinel.
type SkipDay struct {
	ID        int64
	ChannelID int64
	Weekday   int
	Label     string
}
