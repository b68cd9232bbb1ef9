package contract

import (
	"context"

	"github.com/dapoades/slack-roster-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	Channel() ChannelRepo
	Participant() ParticipantRepo
	Rotation() RotationRepo
}

// ChannelRepo defines the contract for the channel repository
type ChannelRepo interface {
	Create(channel *entity.Channel) error
	GetBySlackID(slackChannelID string) (*entity.Channel, error)
	GetByID(id int64) (*entity.Channel, error)
	Update(channel *entity.Channel) error
	GetActiveChannels() ([]*entity.Channel, error)
}

// ParticipantRepo defines the contract for the participant repository
type ParticipantRepo interface {
	Create(participant *entity.Participant) error
	GetByChannelAndSlackID(channelID int64, slackUserID string) (*entity.Participant, error)
	GetActiveByChannel(channelID int64) ([]*entity.Participant, error)
	Deactivate(participantID int64) error
}

// RotationRepo defines the contract for rotation configuration and skip days
type RotationRepo interface {
	CreateConfig(config *entity.RotationConfig) error
	GetConfigByChannelID(channelID int64) (*entity.RotationConfig, error)
	UpdateConfig(config *entity.RotationConfig) error
	GetEnabledConfigs() ([]*entity.RotationConfig, error)
	SetEnabled(channelID int64, enabled bool) error
	UpsertSkipDay(skipDay *entity.SkipDay) error
	DeleteSkipDay(channelID int64, weekday int) error
	GetSkipDays(channelID int64) ([]*entity.SkipDay, error)
}
