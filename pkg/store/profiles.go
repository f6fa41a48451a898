package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/briefly-app/briefly/pkg/domain"
)

type profileRow struct {
	UserID               string    `db:"user_id"`
	NotificationsEnabled bool      `db:"notifications_enabled"`
	NotificationEmail    string    `db:"notification_email"`
	UpdatedAt            time.Time `db:"updated_at"`
}

// GetProfile retrieves a subscriber profile, nil when none exists
func (s *Store) GetProfile(ctx context.Context, userID string) (*domain.SubscriberProfile, error) {
	var row profileRow
	err := s.db.GetContext(ctx, &row, "SELECT * FROM profiles WHERE user_id = ?", userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile for %s: %w", userID, err)
	}
	return &domain.SubscriberProfile{
		UserID:               row.UserID,
		NotificationsEnabled: row.NotificationsEnabled,
		NotificationEmail:    row.NotificationEmail,
		UpdatedAt:            row.UpdatedAt,
	}, nil
}

// UpsertProfile creates or replaces a subscriber profile
func (s *Store) UpsertProfile(ctx context.Context, profile domain.SubscriberProfile) error {
	query := `INSERT INTO profiles (user_id, notifications_enabled, notification_email, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			notifications_enabled = excluded.notifications_enabled,
			notification_email = excluded.notification_email,
			updated_at = CURRENT_TIMESTAMP`
	if _, err := s.db.ExecContext(ctx, query,
		profile.UserID, profile.NotificationsEnabled, profile.NotificationEmail); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// GetPromptOverride returns the per-channel instruction override for a
// subscriber, empty string when none is set
func (s *Store) GetPromptOverride(ctx context.Context, userID, channelID string) (string, error) {
	var prompt string
	err := s.db.GetContext(ctx, &prompt,
		"SELECT prompt FROM prompt_overrides WHERE user_id = ? AND channel_id = ?", userID, channelID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("get prompt override for %s/%s: %w", userID, channelID, err)
	}
	return prompt, nil
}

// SetPromptOverride stores a subscriber's instruction override for a channel
func (s *Store) SetPromptOverride(ctx context.Context, override domain.PromptOverride) error {
	query := `INSERT INTO prompt_overrides (user_id, channel_id, prompt, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id, channel_id) DO UPDATE SET
			prompt = excluded.prompt,
			updated_at = CURRENT_TIMESTAMP`
	if _, err := s.db.ExecContext(ctx, query, override.UserID, override.ChannelID, override.Prompt); err != nil {
		return fmt.Errorf("set prompt override: %w", err)
	}
	return nil
}

// DeletePromptOverride removes a subscriber's override for a channel
func (s *Store) DeletePromptOverride(ctx context.Context, userID, channelID string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM prompt_overrides WHERE user_id = ? AND channel_id = ?", userID, channelID); err != nil {
		return fmt.Errorf("delete prompt override: %w", err)
	}
	return nil
}
