package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dapoades/slack-roster-bot/internal/domain"
	"github.com/dapoades/slack-roster-bot/internal/domain/contract"
	"github.com/dapoades/slack-roster-bot/internal/domain/entity"
	"github.com/dapoades/slack-roster-bot/internal/roster"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
)

type rosterService struct {
	dm          contract.DataManager
	slackClient contract.SlackAPI
	scheduler   *scheduler
	log         zerolog.Logger
}

func newRoster(dm contract.DataManager, slackClient contract.SlackAPI, log zerolog.Logger) *rosterService {
	return &rosterService{
		dm:          dm,
		slackClient: slackClient,
		scheduler:   nil, // Will be set later to avoid circular dependency
		log:         log,
	}
}

func (s *rosterService) SetScheduler(scheduler *scheduler) {
	s.scheduler = scheduler
}

func (s *rosterService) SetupChannel(slackChannelID, slackChannelName, slackTeamID string) (*entity.Channel, bool, error) {
	// Check if channel already exists
	channel, err := s.dm.Channel().GetBySlackID(slackChannelID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check channel: %w", err)
	}

	if channel != nil {
		return channel, false, nil // Channel already existed
	}

	channel = &entity.Channel{
		SlackChannelID:   slackChannelID,
		SlackChannelName: slackChannelName,
		SlackTeamID:      slackTeamID,
		IsActive:         true,
	}

	// Channel and its default config are created together or not at all
	err = s.dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		if err := tx.Channel().Create(channel); err != nil {
			return fmt.Errorf("failed to create channel: %w", err)
		}

		config := &entity.RotationConfig{
			ChannelID:   channel.ID,
			PostingDay:  domain.DefaultPostingDay,
			PostingTime: domain.DefaultPostingTime,
			WeeksAhead:  domain.DefaultWeeksAhead,
			IsEnabled:   true,
		}

		return tx.Rotation().CreateConfig(config)
	})
	if err != nil {
		return nil, false, err
	}

	if s.scheduler != nil {
		s.scheduler.NotifyConfigChange()
	}

	return channel, true, nil // Channel was auto-created
}

func (s *rosterService) AddParticipant(channelID int64, slackUserID string) error {
	userInfo, err := s.slackClient.GetUserInfo(slackUserID)
	if err != nil {
		s.log.Error().Err(err).Str("slack_user_id", slackUserID).Msg("failed to get user info from Slack API")
		return fmt.Errorf("failed to get user info from Slack: %w", err)
	}

	// Check if participant already exists
	existing, err := s.dm.Participant().GetByChannelAndSlackID(channelID, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to check existing participant: %w", err)
	}

	if existing != nil {
		return fmt.Errorf("user is already on the roster")
	}

	displayName := userInfo.Profile.RealName
	if displayName == "" {
		displayName = userInfo.Profile.DisplayName
	}
	if displayName == "" {
		displayName = userInfo.Name
	}

	participant := &entity.Participant{
		ChannelID:     channelID,
		SlackUserID:   slackUserID,
		SlackUserName: userInfo.Name,
		DisplayName:   displayName,
		IsActive:      true,
	}

	return s.dm.Participant().Create(participant)
}

func (s *rosterService) RemoveParticipant(channelID int64, slackUserID string) error {
	participant, err := s.dm.Participant().GetByChannelAndSlackID(channelID, slackUserID)
	if err != nil {
		return fmt.Errorf("failed to find participant: %w", err)
	}

	if participant == nil {
		return fmt.Errorf("user is not on the roster")
	}

	return s.dm.Participant().Deactivate(participant.ID)
}

func (s *rosterService) ListParticipants(channelID int64) ([]*entity.Participant, error) {
	return s.dm.Participant().GetActiveByChannel(channelID)
}

// WeekFor computes the roster for the week containing at. The rotation offset
// is derived from the ISO week number so re-renders within the same week are
// identical.
func (s *rosterService) WeekFor(channelID int64, at time.Time) (roster.Week, error) {
	names, skipDays, err := s.rosterInputs(channelID)
	if err != nil {
		return nil, err
	}

	if len(names) == 0 {
		return nil, roster.ErrNoParticipants
	}

	week, err := roster.ComputeWeekRoster(names, roster.WeekOffset(at, len(names)), skipDays)
	if err != nil {
		return nil, fmt.Errorf("failed to compute roster: %w", err)
	}

	return week, nil
}

// Preview computes weekCount consecutive weekly rosters starting from the
// week containing from.
func (s *rosterService) Preview(channelID int64, from time.Time, weekCount int) ([]roster.WeekSchedule, error) {
	names, skipDays, err := s.rosterInputs(channelID)
	if err != nil {
		return nil, err
	}

	schedules, err := roster.ComputeMultiWeekRosters(names, from, weekCount, skipDays)
	if err != nil {
		return nil, fmt.Errorf("failed to compute schedules: %w", err)
	}

	return schedules, nil
}

func (s *rosterService) SetSkipDay(channelID int64, weekday int, label string) error {
	if _, ok := domain.WeekdayNames[weekday]; !ok {
		return fmt.Errorf("invalid weekday: %d", weekday)
	}

	return s.dm.Rotation().UpsertSkipDay(&entity.SkipDay{
		ChannelID: channelID,
		Weekday:   weekday,
		Label:     label,
	})
}

func (s *rosterService) ClearSkipDay(channelID int64, weekday int) error {
	if _, ok := domain.WeekdayNames[weekday]; !ok {
		return fmt.Errorf("invalid weekday: %d", weekday)
	}

	return s.dm.Rotation().DeleteSkipDay(channelID, weekday)
}

func (s *rosterService) UpdateConfig(channelID int64, configType, value string) error {
	config, err := s.dm.Rotation().GetConfigByChannelID(channelID)
	if err != nil {
		return fmt.Errorf("failed to get rotation config: %w", err)
	}

	if config == nil {
		return fmt.Errorf("channel has no rotation config")
	}

	switch configType {
	case "time":
		if _, err := time.Parse("15:04", value); err != nil {
			return fmt.Errorf("invalid time format, use HH:MM")
		}
		config.PostingTime = value
	case "day":
		weekday, ok := domain.WeekdayNumbers[value]
		if !ok {
			return fmt.Errorf("invalid weekday: %s", value)
		}
		config.PostingDay = weekday
	case "weeks":
		weeks, err := strconv.Atoi(value)
		if err != nil || weeks < 1 || weeks > 12 {
			return fmt.Errorf("weeks must be a number between 1 and 12")
		}
		config.WeeksAhead = weeks
	default:
		return fmt.Errorf("unknown config option: %s", configType)
	}

	if err := s.dm.Rotation().UpdateConfig(config); err != nil {
		return fmt.Errorf("failed to update rotation config: %w", err)
	}

	if s.scheduler != nil {
		s.scheduler.NotifyConfigChange()
	}

	return nil
}

func (s *rosterService) PauseRotation(channelID int64) error {
	if err := s.dm.Rotation().SetEnabled(channelID, false); err != nil {
		return fmt.Errorf("failed to pause rotation: %w", err)
	}

	if s.scheduler != nil {
		s.scheduler.NotifyConfigChange()
	}

	return nil
}

func (s *rosterService) ResumeRotation(channelID int64) error {
	if err := s.dm.Rotation().SetEnabled(channelID, true); err != nil {
		return fmt.Errorf("failed to resume rotation: %w", err)
	}

	if s.scheduler != nil {
		s.scheduler.NotifyConfigChange()
	}

	return nil
}

func (s *rosterService) GetConfig(channelID int64) (*entity.RotationConfig, []*entity.SkipDay, error) {
	config, err := s.dm.Rotation().GetConfigByChannelID(channelID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get rotation config: %w", err)
	}

	skipDays, err := s.dm.Rotation().GetSkipDays(channelID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get skip days: %w", err)
	}

	return config, skipDays, nil
}

func (s *rosterService) Announce(channelID int64, text string) error {
	channel, err := s.dm.Channel().GetByID(channelID)
	if err != nil {
		return fmt.Errorf("failed to get channel: %w", err)
	}

	if channel == nil {
		return fmt.Errorf("channel not found")
	}

	_, _, err = s.slackClient.PostMessage(
		channel.SlackChannelID,
		slack.MsgOptionText(fmt.Sprintf("📢 *Announcement*\n\n%s", text), false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send announcement: %w", err)
	}

	return nil
}

// PostWeekRoster renders the roster for the week containing at and posts it
// to the channel.
func (s *rosterService) PostWeekRoster(channelID int64, at time.Time) error {
	channel, err := s.dm.Channel().GetByID(channelID)
	if err != nil {
		return fmt.Errorf("failed to get channel: %w", err)
	}

	if channel == nil {
		return fmt.Errorf("channel not found")
	}

	week, err := s.WeekFor(channelID, at)
	if err != nil {
		if errors.Is(err, roster.ErrNoParticipants) {
			message := "🧹 *Weekly Roster*\n\nNo one is on the roster yet. Use `/roster add @user` to add participants!"
			_, _, postErr := s.slackClient.PostMessage(
				channel.SlackChannelID,
				slack.MsgOptionText(message, false),
				slack.MsgOptionAsUser(false),
			)
			return postErr
		}
		return err
	}

	weekStart := roster.StartOfWeek(at)
	message := formatWeek(week, weekStart, weekStart.AddDate(0, 0, 6))

	_, _, err = s.slackClient.PostMessage(
		channel.SlackChannelID,
		slack.MsgOptionText(message, false),
		slack.MsgOptionAsUser(false),
	)
	if err != nil {
		return fmt.Errorf("failed to send Slack message: %w", err)
	}

	s.log.Info().Str("slack_channel_id", channel.SlackChannelID).Msg("weekly roster posted")
	return nil
}

// rosterInputs loads the participant names (in rotation order) and the skip
// day labels for a channel.
func (s *rosterService) rosterInputs(channelID int64) ([]string, map[string]string, error) {
	participants, err := s.dm.Participant().GetActiveByChannel(channelID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get participants: %w", err)
	}

	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.DisplayName)
	}

	skipDays, err := s.dm.Rotation().GetSkipDays(channelID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get skip days: %w", err)
	}

	skipMap := make(map[string]string, len(skipDays))
	for _, sd := range skipDays {
		skipMap[domain.WeekdayNames[sd.Weekday]] = sd.Label
	}

	return names, skipMap, nil
}
