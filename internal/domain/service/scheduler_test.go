package service

import (
	"testing"

	"github.com/dapoades/slack-roster-bot/internal/domain"
	"github.com/dapoades/slack-roster-bot/internal/domain/entity"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_cronSpec(t *testing.T) {
	tests := []struct {
		name    string
		config  *entity.RotationConfig
		want    string
		wantErr bool
	}{
		{
			name:   "Should build spec for Monday morning",
			config: &entity.RotationConfig{PostingDay: domain.Monday, PostingTime: "09:00"},
			want:   "0 9 * * 1",
		},
		{
			name:   "Should build spec for Friday evening",
			config: &entity.RotationConfig{PostingDay: domain.Friday, PostingTime: "17:30"},
			want:   "30 17 * * 5",
		},
		{
			name:   "Should map ISO Sunday to cron Sunday",
			config: &entity.RotationConfig{PostingDay: domain.Sunday, PostingTime: "08:15"},
			want:   "15 8 * * 0",
		},
		{
			name:    "Should reject malformed time",
			config:  &entity.RotationConfig{PostingDay: domain.Monday, PostingTime: "nine"},
			wantErr: true,
		},
		{
			name:    "Should reject out-of-range hour",
			config:  &entity.RotationConfig{PostingDay: domain.Monday, PostingTime: "24:00"},
			wantErr: true,
		},
		{
			name:    "Should reject invalid posting day",
			config:  &entity.RotationConfig{PostingDay: 0, PostingTime: "09:00"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := cronSpec(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func Test_scheduler_reload(t *testing.T) {
	t.Run("Should register one entry per enabled config", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockRotationRepo.EXPECT().
			GetEnabledConfigs().
			Return([]*entity.RotationConfig{
				{ID: 1, ChannelID: 1, PostingDay: domain.Monday, PostingTime: "09:00"},
				{ID: 2, ChannelID: 2, PostingDay: domain.Friday, PostingTime: "17:00"},
			}, nil).Times(1)

		s := newScheduler(m.mockDataManager, newTestRoster(m), zerolog.Nop())
		s.reload()

		assert.Len(t, s.entries, 2)
	})

	t.Run("Should drop entries for disabled channels", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		first := m.mockRotationRepo.EXPECT().
			GetEnabledConfigs().
			Return([]*entity.RotationConfig{
				{ID: 1, ChannelID: 1, PostingDay: domain.Monday, PostingTime: "09:00"},
			}, nil).Times(1)
		m.mockRotationRepo.EXPECT().
			GetEnabledConfigs().
			Return(nil, nil).Times(1).After(first)

		s := newScheduler(m.mockDataManager, newTestRoster(m), zerolog.Nop())
		s.reload()
		require.Len(t, s.entries, 1)

		s.reload()
		assert.Empty(t, s.entries)
	})

	t.Run("Should skip channels with bad posting config", func(t *testing.T) {
		m, ctrl := newServiceTestMock(t)
		defer ctrl.Finish()

		m.mockRotationRepo.EXPECT().
			GetEnabledConfigs().
			Return([]*entity.RotationConfig{
				{ID: 1, ChannelID: 1, PostingDay: domain.Monday, PostingTime: "bad"},
				{ID: 2, ChannelID: 2, PostingDay: domain.Tuesday, PostingTime: "10:00"},
			}, nil).Times(1)

		s := newScheduler(m.mockDataManager, newTestRoster(m), zerolog.Nop())
		s.reload()

		require.Len(t, s.entries, 1)
		_, ok := s.entries[int64(2)]
		assert.True(t, ok)
	})
}

func Test_scheduler_NotifyConfigChange(t *testing.T) {
	m, ctrl := newServiceTestMock(t)
	defer ctrl.Finish()

	s := newScheduler(m.mockDataManager, newTestRoster(m), zerolog.Nop())

	// Must never block, even when no one is draining the channel
	s.NotifyConfigChange()
	s.NotifyConfigChange()
	s.NotifyConfigChange()

	assert.Len(t, s.configChanged, 1)
}
