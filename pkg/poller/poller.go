// Package poller drives the poll cycle: list subscribed channels, fetch the
// newest item of each, decide what to do with it and commit the outcome.
package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/briefly-app/briefly/pkg/domain"
	"github.com/briefly-app/briefly/pkg/tracker"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/feed_client.go -pkg mocks -skip-ensure -fmt goimports . FeedClient
//go:generate moq -out mocks/notifier.go -pkg mocks -skip-ensure -fmt goimports . Notifier

// Store provides subscriptions and tracker persistence
type Store interface {
	ListChannels(ctx context.Context) ([]domain.Channel, error)
	GetSubscribers(ctx context.Context, channelID string) ([]domain.Subscription, error)
	GetTracker(ctx context.Context, channelID string) (*domain.ChannelTracker, error)
	UpsertTracker(ctx context.Context, tr domain.ChannelTracker) error
}

// FeedClient fetches the newest entry of a channel feed
type FeedClient interface {
	LatestEntry(ctx context.Context, channelID string) (*domain.FeedEntry, error)
}

// Notifier fans a new item out to subscribers and reports the aggregate
// outcome; NotifyFailure is the terminal-abandonment notice.
type Notifier interface {
	Dispatch(ctx context.Context, channel domain.Channel, entry domain.FeedEntry, subs []domain.Subscription) bool
	NotifyFailure(ctx context.Context, channel domain.Channel, entry domain.FeedEntry, subs []domain.Subscription)
}

// Poller polls all subscribed channels on a fixed interval
type Poller struct {
	store      Store
	feed       FeedClient
	notifier   Notifier
	interval   time.Duration
	maxWorkers int
	nowFn      func() time.Time // test hook
}

// New creates a poller
func New(store Store, feed FeedClient, notifier Notifier, interval time.Duration, maxWorkers int) *Poller {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Poller{
		store:      store,
		feed:       feed,
		notifier:   notifier,
		interval:   interval,
		maxWorkers: maxWorkers,
		nowFn:      time.Now,
	}
}

// Run polls immediately, then on every interval tick until ctx is canceled
func (p *Poller) Run(ctx context.Context) error {
	lgr.Printf("[INFO] poller started, interval %v, workers %d", p.interval, p.maxWorkers)

	if err := p.RunOnce(ctx); err != nil {
		lgr.Printf("[WARN] poll cycle failed: %v", err)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			lgr.Printf("[INFO] poller stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := p.RunOnce(ctx); err != nil {
				lgr.Printf("[WARN] poll cycle failed: %v", err)
			}
		}
	}
}

// RunOnce performs a single poll cycle over all subscribed channels.
// Channels are processed concurrently, each touches only its own tracker.
// A failed channel is logged and never aborts the cycle for the others.
func (p *Poller) RunOnce(ctx context.Context) error {
	channels, err := p.store.ListChannels(ctx)
	if err != nil {
		return fmt.Errorf("list channels: %w", err)
	}
	lgr.Printf("[INFO] polling %d channels", len(channels))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.maxWorkers)
	for _, channel := range channels {
		g.Go(func() error {
			if err := p.pollChannel(gctx, channel); err != nil {
				lgr.Printf("[WARN] channel %s: %v", channel.ID, err)
			}
			return nil
		})
	}
	return g.Wait()
}

// pollChannel fetches the newest entry for one channel, runs the decision
// and commits the resulting tracker
func (p *Poller) pollChannel(ctx context.Context, channel domain.Channel) error {
	entry, err := p.feed.LatestEntry(ctx, channel.ID)
	if err != nil {
		return fmt.Errorf("fetch feed: %w", err)
	}
	if entry == nil {
		lgr.Printf("[DEBUG] no usable entries for %s", channel.ID)
		return nil
	}

	tr, err := p.store.GetTracker(ctx, channel.ID)
	if err != nil {
		return fmt.Errorf("get tracker: %w", err)
	}

	now := p.nowFn()
	decision := tracker.Decide(tr, entry, now)
	lgr.Printf("[DEBUG] channel %s item %s: %s", channel.ID, entry.ItemID, decision.Action)

	switch decision.Action {
	case tracker.ActionSkip:
		return nil

	case tracker.ActionBacklog:
		lgr.Printf("[INFO] channel %s starts at backlog item %s, not notifying", channel.ID, entry.ItemID)
		return p.commit(ctx, tracker.Resolved(channel.ID, entry.ItemID, now))

	case tracker.ActionAbandon:
		subs, err := p.store.GetSubscribers(ctx, channel.ID)
		if err != nil {
			return fmt.Errorf("get subscribers: %w", err)
		}
		lgr.Printf("[WARN] giving up on item %s (%s) after %d attempts", entry.ItemID, channel.ID, tracker.MaxRetries+1)
		p.notifier.NotifyFailure(ctx, channel, *entry, subs)
		return p.commit(ctx, tracker.Resolved(channel.ID, entry.ItemID, now))

	case tracker.ActionNotify:
		subs, err := p.store.GetSubscribers(ctx, channel.ID)
		if err != nil {
			return fmt.Errorf("get subscribers: %w", err)
		}
		if ok := p.notifier.Dispatch(ctx, channel, *entry, subs); ok {
			return p.commit(ctx, tracker.Resolved(channel.ID, entry.ItemID, now))
		}
		lgr.Printf("[WARN] dispatch incomplete for %s (%s), attempt %d of %d",
			entry.ItemID, channel.ID, decision.RetryCount+1, tracker.MaxRetries+1)
		return p.commit(ctx, tracker.Pending(tr, channel.ID, entry.ItemID, decision.RetryCount, now))
	}
	return nil
}

func (p *Poller) commit(ctx context.Context, tr domain.ChannelTracker) error {
	if err := p.store.UpsertTracker(ctx, tr); err != nil {
		return fmt.Errorf("commit tracker for %s: %w", tr.ChannelID, err)
	}
	return nil
}
