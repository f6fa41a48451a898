package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/briefly-app/briefly/pkg/domain"
)

type trackerRow struct {
	ChannelID     string    `db:"channel_id"`
	LastItemID    string    `db:"last_item_id"`
	PendingItemID string    `db:"pending_item_id"`
	RetryCount    int       `db:"retry_count"`
	LastUpdated   time.Time `db:"last_updated"`
}

// GetTracker retrieves a channel's tracker, nil for a never-observed channel
func (s *Store) GetTracker(ctx context.Context, channelID string) (*domain.ChannelTracker, error) {
	var row trackerRow
	err := s.db.GetContext(ctx, &row, "SELECT * FROM channel_trackers WHERE channel_id = ?", channelID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tracker for %s: %w", channelID, err)
	}
	return &domain.ChannelTracker{
		ChannelID:     row.ChannelID,
		LastItemID:    row.LastItemID,
		PendingItemID: row.PendingItemID,
		RetryCount:    row.RetryCount,
		LastUpdated:   row.LastUpdated,
	}, nil
}

// ListTrackers returns all channel trackers, newest update first
func (s *Store) ListTrackers(ctx context.Context) ([]domain.ChannelTracker, error) {
	var rows []trackerRow
	err := s.db.SelectContext(ctx, &rows, "SELECT * FROM channel_trackers ORDER BY last_updated DESC")
	if err != nil {
		return nil, fmt.Errorf("list trackers: %w", err)
	}

	trackers := make([]domain.ChannelTracker, len(rows))
	for i, row := range rows {
		trackers[i] = domain.ChannelTracker{
			ChannelID:     row.ChannelID,
			LastItemID:    row.LastItemID,
			PendingItemID: row.PendingItemID,
			RetryCount:    row.RetryCount,
			LastUpdated:   row.LastUpdated,
		}
	}
	return trackers, nil
}

// UpsertTracker writes a channel's tracker as a single atomic replace. This
// is the one write path of the polling core, retried on SQLite lock errors.
func (s *Store) UpsertTracker(ctx context.Context, tr domain.ChannelTracker) error {
	retrier := repeater.NewBackoff(5, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))

	return retrier.Do(ctx, func() error {
		query := `INSERT INTO channel_trackers (channel_id, last_item_id, pending_item_id, retry_count, last_updated)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(channel_id) DO UPDATE SET
				last_item_id = excluded.last_item_id,
				pending_item_id = excluded.pending_item_id,
				retry_count = excluded.retry_count,
				last_updated = excluded.last_updated`
		_, err := s.db.ExecContext(ctx, query,
			tr.ChannelID, tr.LastItemID, tr.PendingItemID, tr.RetryCount, tr.LastUpdated)
		if err != nil {
			if isLockError(err) {
				return err // retry
			}
			return &criticalError{err: fmt.Errorf("upsert tracker: %w", err)}
		}
		return nil
	})
}
