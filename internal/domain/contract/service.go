package contract

import (
	"time"

	"github.com/dapoades/slack-roster-bot/internal/domain/entity"
	"github.com/dapoades/slack-roster-bot/internal/roster"
)

type RosterService interface {
	SetupChannel(slackChannelID, channelName, teamID string) (*entity.Channel, bool, error)
	AddParticipant(channelID int64, slackUserID string) error
	RemoveParticipant(channelID int64, slackUserID string) error
	ListParticipants(channelID int64) ([]*entity.Participant, error)
	WeekFor(channelID int64, at time.Time) (roster.Week, error)
	Preview(channelID int64, from time.Time, weekCount int) ([]roster.WeekSchedule, error)
	SetSkipDay(channelID int64, weekday int, label string) error
	ClearSkipDay(channelID int64, weekday int) error
	UpdateConfig(channelID int64, configType, value string) error
	PauseRotation(channelID int64) error
	ResumeRotation(channelID int64) error
	GetConfig(channelID int64) (*entity.RotationConfig, []*entity.SkipDay, error)
	Announce(channelID int64, text string) error
	PostWeekRoster(channelID int64, at time.Time) error
}
