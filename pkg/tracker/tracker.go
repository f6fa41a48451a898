// Package tracker decides what to do with the newest observed item of a
// channel and produces the tracker values to persist afterwards. Decisions
// are deterministic and free of I/O; the poller owns fetching the feed,
// running the dispatcher and committing the resulting tracker.
package tracker

import (
	"time"

	"github.com/briefly-app/briefly/pkg/domain"
)

// MaxRetries caps dispatch attempts for a single item: retry counts 0..3
// each get one attempt, the observation that would push the count past
// MaxRetries is abandoned without a further attempt.
const MaxRetries = 3

// BacklogAge is how old an item may be on a channel's first-ever
// observation before it is treated as history rather than news.
const BacklogAge = 24 * time.Hour

// Action is the outcome of a decision
type Action int

// possible actions for an observed item
const (
	ActionSkip    Action = iota // nothing to do, no state change
	ActionNotify                // dispatch to subscribers, then commit outcome
	ActionAbandon               // retry budget exhausted, send failure notice and resolve
	ActionBacklog               // first observation of an old item, resolve silently
)

// String returns the action name for logs
func (a Action) String() string {
	switch a {
	case ActionSkip:
		return "skip"
	case ActionNotify:
		return "notify"
	case ActionAbandon:
		return "abandon"
	case ActionBacklog:
		return "backlog"
	}
	return "unknown"
}

// Decision is the verdict for a single observation. RetryCount is
// meaningful for ActionNotify only: it is the attempt number to record if
// the dispatch fails.
type Decision struct {
	Action     Action
	RetryCount int
}

// Decide applies the per-channel state machine to the newest feed entry.
// tr is the stored tracker, nil for a channel never observed before.
func Decide(tr *domain.ChannelTracker, entry *domain.FeedEntry, now time.Time) Decision {
	if entry == nil {
		return Decision{Action: ActionSkip}
	}

	// already fully resolved, either notified or abandoned earlier
	if tr != nil && tr.LastItemID == entry.ItemID {
		return Decision{Action: ActionSkip}
	}

	retryCount := 0
	if tr != nil && tr.PendingItemID == entry.ItemID {
		retryCount = tr.RetryCount + 1
	}

	if retryCount > MaxRetries {
		return Decision{Action: ActionAbandon}
	}

	// first-ever observation of a channel: an item older than BacklogAge
	// seeds the baseline without notifying anyone about it
	firstObservation := tr == nil || (tr.LastItemID == "" && tr.PendingItemID == "")
	if firstObservation && !entry.Published.IsZero() && now.Sub(entry.Published) > BacklogAge {
		return Decision{Action: ActionBacklog}
	}

	return Decision{Action: ActionNotify, RetryCount: retryCount}
}

// Resolved returns the tracker to persist once an item is fully resolved:
// notified successfully, abandoned after exhausting retries, or absorbed as
// backlog on first observation. Pending state is cleared either way.
func Resolved(channelID, itemID string, now time.Time) domain.ChannelTracker {
	return domain.ChannelTracker{
		ChannelID:   channelID,
		LastItemID:  itemID,
		RetryCount:  0,
		LastUpdated: now,
	}
}

// Pending returns the tracker to persist after a failed dispatch attempt.
// The last resolved item is kept so the channel baseline survives the retry
// window; retryCount is the value computed at decision time.
func Pending(prev *domain.ChannelTracker, channelID, itemID string, retryCount int, now time.Time) domain.ChannelTracker {
	lastItemID := ""
	if prev != nil {
		lastItemID = prev.LastItemID
	}
	return domain.ChannelTracker{
		ChannelID:     channelID,
		LastItemID:    lastItemID,
		PendingItemID: itemID,
		RetryCount:    retryCount,
		LastUpdated:   now,
	}
}
