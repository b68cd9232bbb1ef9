package database

import (
	"database/sql"
	"fmt"

	"github.com/dapoades/slack-roster-bot/internal/domain/contract"
	"github.com/dapoades/slack-roster-bot/internal/domain/entity"
)

type participantRepo struct {
	db dbConn
}

func newParticipantRepo(db dbConn) contract.ParticipantRepo {
	return &participantRepo{db: db}
}

func (r *participantRepo) Create(participant *entity.Participant) error {
	query := `
		INSERT INTO participants (channel_id, slack_user_id, slack_user_name, display_name, is_active)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		participant.ChannelID,
		participant.SlackUserID,
		participant.SlackUserName,
		participant.DisplayName,
		participant.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to create participant: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	participant.ID = id
	return nil
}

func (r *participantRepo) GetByChannelAndSlackID(channelID int64, slackUserID string) (*entity.Participant, error) {
	participant := &entity.Participant{}
	query := `
		SELECT id, channel_id, slack_user_id, slack_user_name, display_name, is_active, joined_at
		FROM participants
		WHERE channel_id = ? AND slack_user_id = ? AND is_active = 1
	`

	err := r.db.QueryRow(query, channelID, slackUserID).Scan(
		&participant.ID,
		&participant.ChannelID,
		&participant.SlackUserID,
		&participant.SlackUserName,
		&participant.DisplayName,
		&participant.IsActive,
		&participant.JoinedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}

	return participant, nil
}

// GetActiveByChannel returns active participants in join order, which is the
// rotation order the roster generator relies on.
func (r *participantRepo) GetActiveByChannel(channelID int64) ([]*entity.Participant, error) {
	query := `
		SELECT id, channel_id, slack_user_id, slack_user_name, display_name, is_active, joined_at
		FROM participants
		WHERE channel_id = ? AND is_active = 1
		ORDER BY joined_at ASC, id ASC
	`

	rows, err := r.db.Query(query, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []*entity.Participant
	for rows.Next() {
		participant := &entity.Participant{}
		err := rows.Scan(
			&participant.ID,
			&participant.ChannelID,
			&participant.SlackUserID,
			&participant.SlackUserName,
			&participant.DisplayName,
			&participant.IsActive,
			&participant.JoinedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, participant)
	}

	return participants, nil
}

func (r *participantRepo) Deactivate(participantID int64) error {
	query := `UPDATE participants SET is_active = 0 WHERE id = ?`

	_, err := r.db.Exec(query, participantID)
	if err != nil {
		return fmt.Errorf("failed to deactivate participant: %w", err)
	}

	return nil
}
