package database

import (
	"database/sql"
	"fmt"

	"github.com/dapoades/slack-roster-bot/internal/domain/contract"
	"github.com/dapoades/slack-roster-bot/internal/domain/entity"
)

type rotationRepo struct {
	db dbConn
}

func newRotationRepo(db dbConn) contract.RotationRepo {
	return &rotationRepo{db: db}
}

func (r *rotationRepo) CreateConfig(config *entity.RotationConfig) error {
	query := `
		INSERT INTO rotation_configs (channel_id, posting_day, posting_time, weeks_ahead, is_enabled)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		config.ChannelID,
		config.PostingDay,
		config.PostingTime,
		config.WeeksAhead,
		config.IsEnabled,
	)
	if err != nil {
		return fmt.Errorf("failed to create rotation config: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	config.ID = id
	return nil
}

func (r *rotationRepo) GetConfigByChannelID(channelID int64) (*entity.RotationConfig, error) {
	config := &entity.RotationConfig{}
	query := `
		SELECT id, channel_id, posting_day, posting_time, weeks_ahead, is_enabled
		FROM rotation_configs
		WHERE channel_id = ?
	`

	err := r.db.QueryRow(query, channelID).Scan(
		&config.ID,
		&config.ChannelID,
		&config.PostingDay,
		&config.PostingTime,
		&config.WeeksAhead,
		&config.IsEnabled,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rotation config: %w", err)
	}

	return config, nil
}

func (r *rotationRepo) UpdateConfig(config *entity.RotationConfig) error {
	query := `
		UPDATE rotation_configs SET
			posting_day = ?,
			posting_time = ?,
			weeks_ahead = ?,
			is_enabled = ?
		WHERE channel_id = ?
	`

	_, err := r.db.Exec(query,
		config.PostingDay,
		config.PostingTime,
		config.WeeksAhead,
		config.IsEnabled,
		config.ChannelID,
	)
	if err != nil {
		return fmt.Errorf("failed to update rotation config: %w", err)
	}

	return nil
}

func (r *rotationRepo) GetEnabledConfigs() ([]*entity.RotationConfig, error) {
	query := `
		SELECT id, channel_id, posting_day, posting_time, weeks_ahead, is_enabled
		FROM rotation_configs
		WHERE is_enabled = 1
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get enabled configs: %w", err)
	}
	defer rows.Close()

	var configs []*entity.RotationConfig
	for rows.Next() {
		config := &entity.RotationConfig{}
		err := rows.Scan(
			&config.ID,
			&config.ChannelID,
			&config.PostingDay,
			&config.PostingTime,
			&config.WeeksAhead,
			&config.IsEnabled,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rotation config: %w", err)
		}
		configs = append(configs, config)
	}

	return configs, nil
}

func (r *rotationRepo) SetEnabled(channelID int64, enabled bool) error {
	query := `UPDATE rotation_configs SET is_enabled = ? WHERE channel_id = ?`

	_, err := r.db.Exec(query, enabled, channelID)
	if err != nil {
		return fmt.Errorf("failed to set rotation enabled: %w", err)
	}

	return nil
}

func (r *rotationRepo) UpsertSkipDay(skipDay *entity.SkipDay) error {
	query := `
		INSERT INTO skip_days (channel_id, weekday, label)
		VALUES (?, ?, ?)
		ON CONFLICT(channel_id, weekday) DO UPDATE SET label = excluded.label
	`

	_, err := r.db.Exec(query, skipDay.ChannelID, skipDay.Weekday, skipDay.Label)
	if err != nil {
		return fmt.Errorf("failed to upsert skip day: %w", err)
	}

	return nil
}

func (r *rotationRepo) DeleteSkipDay(channelID int64, weekday int) error {
	query := `DELETE FROM skip_days WHERE channel_id = ? AND weekday = ?`

	_, err := r.db.Exec(query, channelID, weekday)
	if err != nil {
		return fmt.Errorf("failed to delete skip day: %w", err)
	}

	return nil
}

func (r *rotationRepo) GetSkipDays(channelID int64) ([]*entity.SkipDay, error) {
	query := `
		SELECT id, channel_id, weekday, label
		FROM skip_days
		WHERE channel_id = ?
		ORDER BY weekday ASC
	`

	rows, err := r.db.Query(query, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get skip days: %w", err)
	}
	defer rows.Close()

	var skipDays []*entity.SkipDay
	for rows.Next() {
		skipDay := &entity.SkipDay{}
		err := rows.Scan(
			&skipDay.ID,
			&skipDay.ChannelID,
			&skipDay.Weekday,
			&skipDay.Label,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan skip day: %w", err)
		}
		skipDays = append(skipDays, skipDay)
	}

	return skipDays, nil
}
