package domain

import "time"

// Channel is an external content source with at least one subscriber.
// Title is display metadata carried on subscription records, best-effort.
type Channel struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// Subscription links a subscriber to a channel. Created and removed by the
// management API, read-only for the polling core.
type Subscription struct {
	UserID       string    `json:"user_id"`
	ChannelID    string    `json:"channel_id"`
	ChannelTitle string    `json:"channel_title,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// SubscriberProfile holds per-subscriber notification settings
type SubscriberProfile struct {
	UserID               string    `json:"user_id"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	NotificationEmail    string    `json:"notification_email,omitempty"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// PromptOverride is a per-subscriber, per-channel instruction for the
// summarizer. Absence means default instructions.
type PromptOverride struct {
	UserID    string    `json:"user_id"`
	ChannelID string    `json:"channel_id"`
	Prompt    string    `json:"prompt"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ChannelTracker records notification progress for a channel. LastItemID is
// the most recent fully resolved item (notified or abandoned), PendingItemID
// an item mid-retry. Empty strings mean absent. The tracker is the only
// record the polling core writes.
type ChannelTracker struct {
	ChannelID     string    `json:"channel_id"`
	LastItemID    string    `json:"last_item_id,omitempty"`
	PendingItemID string    `json:"pending_item_id,omitempty"`
	RetryCount    int       `json:"retry_count"`
	LastUpdated   time.Time `json:"last_updated"`
}

// FeedEntry is the newest entry of a channel feed, never persisted
type FeedEntry struct {
	ItemID    string    `json:"item_id"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Published time.Time `json:"published"`
}
