package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dapoades/slack-roster-bot/internal/domain/contract"
	"github.com/dapoades/slack-roster-bot/internal/domain/entity"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// scheduler posts each channel's weekly roster on its configured day and
// time. One cron entry is kept per enabled channel; entries are rebuilt
// whenever a config change is signaled.
type scheduler struct {
	dm            contract.DataManager
	rosterService *rosterService
	c             *cron.Cron
	entries       map[int64]cron.EntryID
	configChanged chan struct{}
	stopChan      chan struct{}
	running       bool
	log           zerolog.Logger
}

func newScheduler(dm contract.DataManager, rosterService *rosterService, log zerolog.Logger) *scheduler {
	return &scheduler{
		dm:            dm,
		rosterService: rosterService,
		c:             cron.New(cron.WithLocation(time.UTC)),
		entries:       make(map[int64]cron.EntryID),
		configChanged: make(chan struct{}, 1),
		stopChan:      make(chan struct{}),
		running:       false,
		log:           log,
	}
}

func (s *scheduler) Start() {
	if s.running {
		return
	}
	s.running = true
	s.log.Info().Msg("scheduler starting")

	s.reload()
	s.c.Start()
	go s.watchLoop()
}

func (s *scheduler) Stop() {
	if !s.running {
		return
	}
	s.log.Info().Msg("scheduler stopping")
	close(s.stopChan)
	s.c.Stop()
	s.running = false
}

// NotifyConfigChange signals the scheduler to rebuild its cron entries.
// Non-blocking: a pending signal already covers any queued changes.
func (s *scheduler) NotifyConfigChange() {
	select {
	case s.configChanged <- struct{}{}:
	default:
	}
}

func (s *scheduler) watchLoop() {
	for {
		select {
		case <-s.configChanged:
			s.log.Info().Msg("configuration changed, rebuilding cron entries")
			s.reload()
		case <-s.stopChan:
			return
		}
	}
}

// reload replaces all cron entries with ones matching the currently enabled
// channel configs.
func (s *scheduler) reload() {
	configs, err := s.dm.Rotation().GetEnabledConfigs()
	if err != nil {
		s.log.Error().Err(err).Msg("failed to load enabled rotation configs")
		return
	}

	for channelID, entryID := range s.entries {
		s.c.Remove(entryID)
		delete(s.entries, channelID)
	}

	for _, config := range configs {
		spec, err := cronSpec(config)
		if err != nil {
			s.log.Error().Err(err).Int64("channel_id", config.ChannelID).Msg("skipping channel with bad posting config")
			continue
		}

		channelID := config.ChannelID
		entryID, err := s.c.AddFunc(spec, func() {
			if err := s.rosterService.PostWeekRoster(channelID, time.Now().UTC()); err != nil {
				s.log.Error().Err(err).Int64("channel_id", channelID).Msg("failed to post weekly roster")
			}
		})
		if err != nil {
			s.log.Error().Err(err).Int64("channel_id", config.ChannelID).Str("spec", spec).Msg("failed to register cron entry")
			continue
		}

		s.entries[config.ChannelID] = entryID
		s.log.Info().Int64("channel_id", config.ChannelID).Str("spec", spec).Msg("cron entry registered")
	}
}

// cronSpec converts a rotation config into a standard 5-field cron spec.
func cronSpec(config *entity.RotationConfig) (string, error) {
	parts := strings.Split(config.PostingTime, ":")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid posting time format: %s", config.PostingTime)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return "", fmt.Errorf("invalid hour in posting time: %s", parts[0])
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return "", fmt.Errorf("invalid minute in posting time: %s", parts[1])
	}

	if config.PostingDay < 1 || config.PostingDay > 7 {
		return "", fmt.Errorf("invalid posting day: %d", config.PostingDay)
	}

	// cron uses 0=Sunday, the config is ISO 8601 (7=Sunday)
	return fmt.Sprintf("%d %d * * %d", minute, hour, config.PostingDay%7), nil
}
