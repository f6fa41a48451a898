// Package notify turns a newly published video into per-subscriber emails.
package notify

import (
	"context"
	"fmt"
	"html"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/briefly-app/briefly/pkg/domain"
	"github.com/briefly-app/briefly/pkg/llm"
	"github.com/briefly-app/briefly/pkg/mailer"
	"github.com/briefly-app/briefly/pkg/markup"
)

//go:generate moq -out mocks/profile_store.go -pkg mocks -skip-ensure -fmt goimports . ProfileStore
//go:generate moq -out mocks/summarizer.go -pkg mocks -skip-ensure -fmt goimports . Summarizer
//go:generate moq -out mocks/sender.go -pkg mocks -skip-ensure -fmt goimports . Sender

// ProfileStore provides subscriber preferences and per-channel overrides
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (*domain.SubscriberProfile, error)
	GetPromptOverride(ctx context.Context, userID, channelID string) (string, error)
}

// Summarizer generates a markdown summary for a video
type Summarizer interface {
	Summarize(ctx context.Context, req llm.Request) (string, error)
}

// Sender delivers a single email message
type Sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Dispatcher fans a new video out to a channel's subscribers. Each
// subscriber gets an individually generated summary so per-subscriber
// prompt overrides apply.
type Dispatcher struct {
	profiles   ProfileStore
	summarizer Summarizer
	sender     Sender
	sanitizer  *bluemonday.Policy
}

// NewDispatcher creates a dispatcher with the given collaborators
func NewDispatcher(profiles ProfileStore, summarizer Summarizer, sender Sender) *Dispatcher {
	return &Dispatcher{
		profiles:   profiles,
		summarizer: summarizer,
		sender:     sender,
		sanitizer:  bluemonday.UGCPolicy(),
	}
}

// Dispatch notifies every eligible subscriber about the entry. Returns true
// only if all eligible subscribers were handled without an error. A failed
// subscriber never stops the rest of the batch.
func (d *Dispatcher) Dispatch(ctx context.Context, channel domain.Channel, entry domain.FeedEntry, subs []domain.Subscription) bool {
	allOK := true
	for _, sub := range subs {
		email, eligible, err := d.eligibleAddress(ctx, sub.UserID)
		if err != nil {
			lgr.Printf("[WARN] can't load profile for %s: %v", sub.UserID, err)
			allOK = false
			continue
		}
		if !eligible {
			lgr.Printf("[DEBUG] subscriber %s not eligible, skipped", sub.UserID)
			continue
		}

		if err := d.notifyOne(ctx, email, sub, channel, entry); err != nil {
			lgr.Printf("[WARN] notification failed for %s on %s: %v", sub.UserID, channel.ID, err)
			allOK = false
			continue
		}
		lgr.Printf("[INFO] notified %s about %s (%s)", sub.UserID, entry.ItemID, channel.ID)
	}
	return allOK
}

// notifyOne generates and sends a summary email to a single subscriber
func (d *Dispatcher) notifyOne(ctx context.Context, email string, sub domain.Subscription, channel domain.Channel, entry domain.FeedEntry) error {
	override, err := d.profiles.GetPromptOverride(ctx, sub.UserID, channel.ID)
	if err != nil {
		return fmt.Errorf("get prompt override: %w", err)
	}

	summary, err := d.summarizer.Summarize(ctx, llm.Request{
		VideoURL:     entry.Link,
		Instructions: override,
		ChannelTitle: channel.Title,
		VideoTitle:   entry.Title,
	})
	if err != nil {
		return fmt.Errorf("summarize %s: %w", entry.ItemID, err)
	}

	msg := mailer.Message{
		To:        email,
		Subject:   "New Video Summary: " + entry.Title,
		PlainBody: summary,
		HTMLBody:  d.htmlBody(entry, d.sanitizer.Sanitize(markup.Render(summary))),
	}
	if err := d.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("send summary: %w", err)
	}
	return nil
}

// NotifyFailure tells every eligible subscriber that the video could not be
// summarized. Send errors are logged only, the abandonment is committed
// regardless of whether the notice got through.
func (d *Dispatcher) NotifyFailure(ctx context.Context, channel domain.Channel, entry domain.FeedEntry, subs []domain.Subscription) {
	plain := fmt.Sprintf("We were unable to generate a summary for %q after several attempts. "+
		"You can watch the video directly: %s", entry.Title, entry.Link)
	htmlText := fmt.Sprintf("<p>We were unable to generate a summary for <strong>%s</strong> after several attempts.</p>"+
		"<p>You can watch the video directly: <a href=%q>%s</a></p>",
		html.EscapeString(entry.Title), entry.Link, html.EscapeString(entry.Link))

	for _, sub := range subs {
		email, eligible, err := d.eligibleAddress(ctx, sub.UserID)
		if err != nil {
			lgr.Printf("[WARN] can't load profile for %s: %v", sub.UserID, err)
			continue
		}
		if !eligible {
			continue
		}

		msg := mailer.Message{
			To:        email,
			Subject:   "Unable to Process Video: " + entry.Title,
			PlainBody: plain,
			HTMLBody:  htmlText + "\n<hr/>\n" + emailFooter,
		}
		if err := d.sender.Send(ctx, msg); err != nil {
			lgr.Printf("[WARN] failure notice to %s not sent: %v", sub.UserID, err)
			continue
		}
		lgr.Printf("[INFO] failure notice sent to %s for %s", sub.UserID, entry.ItemID)
	}
}

// eligibleAddress resolves the destination address for a subscriber.
// Missing profile, disabled notifications or no address mean not eligible.
func (d *Dispatcher) eligibleAddress(ctx context.Context, userID string) (email string, eligible bool, err error) {
	profile, err := d.profiles.GetProfile(ctx, userID)
	if err != nil {
		return "", false, fmt.Errorf("get profile: %w", err)
	}
	if profile == nil || !profile.NotificationsEnabled || profile.NotificationEmail == "" {
		return "", false, nil
	}
	return profile.NotificationEmail, true, nil
}

const emailFooter = "<p><em>You are receiving this because you subscribed to this channel on Briefly.</em></p>"

// htmlBody wraps rendered content into the notification email layout
func (d *Dispatcher) htmlBody(entry domain.FeedEntry, content string) string {
	header := fmt.Sprintf("<h1>New Video: <a href=%q>%s</a></h1>", entry.Link, html.EscapeString(entry.Title))
	return header + "\n" + content + "\n<hr/>\n" + emailFooter
}
