package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/briefly-app/briefly/pkg/domain"
)

func TestDecide(t *testing.T) {
	now := time.Date(2025, 8, 30, 12, 0, 0, 0, time.UTC)
	fresh := now.Add(-time.Hour)
	stale := now.Add(-25 * time.Hour)

	entry := func(id string, published time.Time) *domain.FeedEntry {
		return &domain.FeedEntry{ItemID: id, Title: "t", Link: "l", Published: published}
	}

	tests := []struct {
		name     string
		tracker  *domain.ChannelTracker
		entry    *domain.FeedEntry
		expected Decision
	}{
		{
			name:     "no feed entry skips",
			tracker:  &domain.ChannelTracker{LastItemID: "A"},
			entry:    nil,
			expected: Decision{Action: ActionSkip},
		},
		{
			name:     "already resolved item skips",
			tracker:  &domain.ChannelTracker{LastItemID: "A"},
			entry:    entry("A", fresh),
			expected: Decision{Action: ActionSkip},
		},
		{
			name:     "new item on known channel notifies with zero retries",
			tracker:  &domain.ChannelTracker{LastItemID: "A"},
			entry:    entry("B", fresh),
			expected: Decision{Action: ActionNotify, RetryCount: 0},
		},
		{
			name:     "pending item continues the retry sequence",
			tracker:  &domain.ChannelTracker{LastItemID: "A", PendingItemID: "B", RetryCount: 1},
			entry:    entry("B", fresh),
			expected: Decision{Action: ActionNotify, RetryCount: 2},
		},
		{
			name:     "different item resets the retry count",
			tracker:  &domain.ChannelTracker{LastItemID: "A", PendingItemID: "B", RetryCount: 3},
			entry:    entry("C", fresh),
			expected: Decision{Action: ActionNotify, RetryCount: 0},
		},
		{
			name:     "retry budget exhausted abandons",
			tracker:  &domain.ChannelTracker{LastItemID: "OLD", PendingItemID: "V", RetryCount: 3},
			entry:    entry("V", fresh),
			expected: Decision{Action: ActionAbandon},
		},
		{
			name:     "first observation of fresh item notifies",
			tracker:  nil,
			entry:    entry("A", fresh),
			expected: Decision{Action: ActionNotify, RetryCount: 0},
		},
		{
			name:     "first observation of old item is backlog",
			tracker:  nil,
			entry:    entry("A", stale),
			expected: Decision{Action: ActionBacklog},
		},
		{
			name:     "empty tracker counts as first observation",
			tracker:  &domain.ChannelTracker{ChannelID: "ch"},
			entry:    entry("A", stale),
			expected: Decision{Action: ActionBacklog},
		},
		{
			name:     "old item with retry history is not backlog",
			tracker:  &domain.ChannelTracker{PendingItemID: "A", RetryCount: 0},
			entry:    entry("A", stale),
			expected: Decision{Action: ActionNotify, RetryCount: 1},
		},
		{
			name:     "old item on established channel still notifies",
			tracker:  &domain.ChannelTracker{LastItemID: "Z"},
			entry:    entry("A", stale),
			expected: Decision{Action: ActionNotify, RetryCount: 0},
		},
		{
			name:     "unknown publish time on first observation notifies",
			tracker:  nil,
			entry:    entry("A", time.Time{}),
			expected: Decision{Action: ActionNotify, RetryCount: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Decide(tt.tracker, tt.entry, now))
		})
	}
}

func TestDecide_RetrySequence(t *testing.T) {
	// an item must fail exactly 4 dispatch attempts before the 5th
	// observation abandons it
	now := time.Now()
	entry := &domain.FeedEntry{ItemID: "V", Published: now.Add(-time.Hour)}

	var tr *domain.ChannelTracker
	for attempt := 0; attempt <= MaxRetries; attempt++ {
		dec := Decide(tr, entry, now)
		assert.Equal(t, ActionNotify, dec.Action, "attempt %d", attempt)
		assert.Equal(t, attempt, dec.RetryCount, "attempt %d", attempt)

		committed := Pending(tr, "ch1", entry.ItemID, dec.RetryCount, now)
		tr = &committed
	}

	dec := Decide(tr, entry, now)
	assert.Equal(t, ActionAbandon, dec.Action, "fifth observation gives up")

	resolved := Resolved("ch1", entry.ItemID, now)
	assert.Equal(t, ActionSkip, Decide(&resolved, entry, now).Action, "abandoned item stays resolved")
}

func TestResolved(t *testing.T) {
	now := time.Now()
	tr := Resolved("ch1", "V", now)
	assert.Equal(t, domain.ChannelTracker{ChannelID: "ch1", LastItemID: "V", LastUpdated: now}, tr)
	assert.Empty(t, tr.PendingItemID)
	assert.Zero(t, tr.RetryCount)
}

func TestPending(t *testing.T) {
	now := time.Now()

	prev := &domain.ChannelTracker{ChannelID: "ch1", LastItemID: "OLD"}
	tr := Pending(prev, "ch1", "V", 2, now)
	assert.Equal(t, "OLD", tr.LastItemID, "last resolved item survives a failed dispatch")
	assert.Equal(t, "V", tr.PendingItemID)
	assert.Equal(t, 2, tr.RetryCount)

	tr = Pending(nil, "ch1", "V", 0, now)
	assert.Empty(t, tr.LastItemID)
	assert.Equal(t, "V", tr.PendingItemID)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "skip", ActionSkip.String())
	assert.Equal(t, "notify", ActionNotify.String())
	assert.Equal(t, "abandon", ActionAbandon.String())
	assert.Equal(t, "backlog", ActionBacklog.String())
	assert.Equal(t, "unknown", Action(42).String())
}
