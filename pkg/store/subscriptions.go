package store

import (
	"context"
	"fmt"
	"time"

	"github.com/briefly-app/briefly/pkg/domain"
)

// channelPageSize bounds a single page of the channel scan
const channelPageSize = 500

type subscriptionRow struct {
	UserID       string    `db:"user_id"`
	ChannelID    string    `db:"channel_id"`
	ChannelTitle string    `db:"channel_title"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r *subscriptionRow) toDomain() domain.Subscription {
	return domain.Subscription{
		UserID:       r.UserID,
		ChannelID:    r.ChannelID,
		ChannelTitle: r.ChannelTitle,
		CreatedAt:    r.CreatedAt,
	}
}

// ListChannels returns the distinct channels that have at least one
// subscriber. The underlying scan is paginated and accumulated; titles on
// subscription records may disagree, the first non-empty one wins.
func (s *Store) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	seen := map[string]int{} // channel id -> index in result
	var channels []domain.Channel

	for offset := 0; ; offset += channelPageSize {
		var rows []subscriptionRow
		query := `SELECT user_id, channel_id, channel_title, created_at FROM subscriptions
			ORDER BY channel_id, user_id LIMIT ? OFFSET ?`
		if err := s.db.SelectContext(ctx, &rows, query, channelPageSize, offset); err != nil {
			return nil, fmt.Errorf("list channels page at %d: %w", offset, err)
		}

		for _, row := range rows {
			idx, ok := seen[row.ChannelID]
			if !ok {
				seen[row.ChannelID] = len(channels)
				channels = append(channels, domain.Channel{ID: row.ChannelID, Title: row.ChannelTitle})
				continue
			}
			if channels[idx].Title == "" && row.ChannelTitle != "" {
				channels[idx].Title = row.ChannelTitle
			}
		}

		if len(rows) < channelPageSize {
			break
		}
	}

	return channels, nil
}

// GetSubscribers returns all subscriptions for a channel
func (s *Store) GetSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error) {
	var rows []subscriptionRow
	query := `SELECT user_id, channel_id, channel_title, created_at FROM subscriptions
		WHERE channel_id = ? ORDER BY user_id`
	if err := s.db.SelectContext(ctx, &rows, query, channelID); err != nil {
		return nil, fmt.Errorf("get subscribers for %s: %w", channelID, err)
	}

	subs := make([]domain.Subscription, len(rows))
	for i, row := range rows {
		subs[i] = row.toDomain()
	}
	return subs, nil
}

// CreateSubscription subscribes a user to a channel, idempotent on repeat
func (s *Store) CreateSubscription(ctx context.Context, sub domain.Subscription) error {
	query := `INSERT INTO subscriptions (user_id, channel_id, channel_title) VALUES (?, ?, ?)
		ON CONFLICT(user_id, channel_id) DO UPDATE SET channel_title = excluded.channel_title`
	if _, err := s.db.ExecContext(ctx, query, sub.UserID, sub.ChannelID, sub.ChannelTitle); err != nil {
		return fmt.Errorf("create subscription: %w", err)
	}
	return nil
}

// DeleteSubscription removes a user's subscription to a channel
func (s *Store) DeleteSubscription(ctx context.Context, userID, channelID string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM subscriptions WHERE user_id = ? AND channel_id = ?",
		userID, channelID); err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}
	return nil
}
