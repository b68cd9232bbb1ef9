package database

import (
	"testing"

	"github.com/dapoades/slack-roster-bot/internal/domain"
	"github.com/dapoades/slack-roster-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationRepository_CreateAndGetConfig(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db)
	repo := newRotationRepo(db.conn)

	config := &entity.RotationConfig{
		ChannelID:   channel.ID,
		PostingDay:  domain.Monday,
		PostingTime: "09:00",
		WeeksAhead:  4,
		IsEnabled:   true,
	}

	err := repo.CreateConfig(config)
	require.NoError(t, err, "Failed to create rotation config")
	assert.NotZero(t, config.ID, "Expected config ID to be set after creation")

	found, err := repo.GetConfigByChannelID(channel.ID)
	require.NoError(t, err, "Failed to get rotation config")
	require.NotNil(t, found, "Expected to find rotation config")

	assert.Equal(t, config.PostingDay, found.PostingDay)
	assert.Equal(t, config.PostingTime, found.PostingTime)
	assert.Equal(t, config.WeeksAhead, found.WeeksAhead)
	assert.True(t, found.IsEnabled)

	// Test not found
	notFound, err := repo.GetConfigByChannelID(99999)
	require.NoError(t, err, "Unexpected error when config not found")
	assert.Nil(t, notFound, "Expected nil when config not found")
}

func TestRotationRepository_UpdateConfig(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db)
	repo := newRotationRepo(db.conn)

	config := &entity.RotationConfig{
		ChannelID:   channel.ID,
		PostingDay:  domain.Monday,
		PostingTime: "09:00",
		WeeksAhead:  4,
		IsEnabled:   true,
	}
	require.NoError(t, repo.CreateConfig(config), "Failed to create rotation config")

	config.PostingDay = domain.Friday
	config.PostingTime = "17:30"
	config.WeeksAhead = 2

	err := repo.UpdateConfig(config)
	require.NoError(t, err, "Failed to update rotation config")

	updated, err := repo.GetConfigByChannelID(channel.ID)
	require.NoError(t, err, "Failed to get updated config")
	require.NotNil(t, updated)

	assert.Equal(t, domain.Friday, updated.PostingDay)
	assert.Equal(t, "17:30", updated.PostingTime)
	assert.Equal(t, 2, updated.WeeksAhead)
}

func TestRotationRepository_SetEnabled(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db)
	repo := newRotationRepo(db.conn)

	config := &entity.RotationConfig{
		ChannelID:   channel.ID,
		PostingDay:  domain.Monday,
		PostingTime: "09:00",
		WeeksAhead:  4,
		IsEnabled:   true,
	}
	require.NoError(t, repo.CreateConfig(config), "Failed to create rotation config")

	enabled, err := repo.GetEnabledConfigs()
	require.NoError(t, err, "Failed to get enabled configs")
	require.Len(t, enabled, 1)

	require.NoError(t, repo.SetEnabled(channel.ID, false), "Failed to disable rotation")

	enabled, err = repo.GetEnabledConfigs()
	require.NoError(t, err, "Failed to get enabled configs after disabling")
	assert.Empty(t, enabled, "Expected no enabled configs")
}

func TestRotationRepository_SkipDays(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db)
	repo := newRotationRepo(db.conn)

	require.NoError(t, repo.UpsertSkipDay(&entity.SkipDay{
		ChannelID: channel.ID,
		Weekday:   domain.Saturday,
		Label:     "GENERAL CLEANING",
	}), "Failed to upsert skip day")

	require.NoError(t, repo.UpsertSkipDay(&entity.SkipDay{
		ChannelID: channel.ID,
		Weekday:   domain.Sunday,
	}), "Failed to upsert unlabeled skip day")

	skipDays, err := repo.GetSkipDays(channel.ID)
	require.NoError(t, err, "Failed to get skip days")
	require.Len(t, skipDays, 2)

	assert.Equal(t, domain.Saturday, skipDays[0].Weekday)
	assert.Equal(t, "GENERAL CLEANING", skipDays[0].Label)
	assert.Equal(t, domain.Sunday, skipDays[1].Weekday)
	assert.Empty(t, skipDays[1].Label)

	// Upsert replaces the label for an existing day
	require.NoError(t, repo.UpsertSkipDay(&entity.SkipDay{
		ChannelID: channel.ID,
		Weekday:   domain.Saturday,
		Label:     "INSPECTION",
	}), "Failed to update skip day label")

	skipDays, err = repo.GetSkipDays(channel.ID)
	require.NoError(t, err, "Failed to get skip days after update")
	require.Len(t, skipDays, 2)
	assert.Equal(t, "INSPECTION", skipDays[0].Label)

	// Delete removes only the targeted day
	require.NoError(t, repo.DeleteSkipDay(channel.ID, domain.Saturday), "Failed to delete skip day")

	skipDays, err = repo.GetSkipDays(channel.ID)
	require.NoError(t, err, "Failed to get skip days after delete")
	require.Len(t, skipDays, 1)
	assert.Equal(t, domain.Sunday, skipDays[0].Weekday)
}
