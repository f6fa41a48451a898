package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/briefly-app/briefly/pkg/domain"
	"github.com/briefly-app/briefly/pkg/llm"
	"github.com/briefly-app/briefly/pkg/mailer"
	"github.com/briefly-app/briefly/pkg/notify/mocks"
)

var (
	testChannel = domain.Channel{ID: "UC1", Title: "Tech Channel"}
	testEntry   = domain.FeedEntry{ItemID: "V1", Title: "Go Generics", Link: "https://example.com/watch?v=V1"}
)

func enabledProfiles(overrides map[string]string) *mocks.ProfileStoreMock {
	return &mocks.ProfileStoreMock{
		GetProfileFunc: func(_ context.Context, userID string) (*domain.SubscriberProfile, error) {
			return &domain.SubscriberProfile{UserID: userID, NotificationsEnabled: true, NotificationEmail: userID + "@example.com"}, nil
		},
		GetPromptOverrideFunc: func(_ context.Context, userID, _ string) (string, error) {
			return overrides[userID], nil
		},
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	profiles := enabledProfiles(map[string]string{"alice": "keep it short"})
	summarizer := &mocks.SummarizerMock{
		SummarizeFunc: func(_ context.Context, _ llm.Request) (string, error) {
			return "## Generics\n- **type parameters**", nil
		},
	}
	sender := &mocks.SenderMock{SendFunc: func(_ context.Context, _ mailer.Message) error { return nil }}

	d := NewDispatcher(profiles, summarizer, sender)
	subs := []domain.Subscription{
		{UserID: "alice", ChannelID: "UC1"},
		{UserID: "bob", ChannelID: "UC1"},
	}

	ok := d.Dispatch(context.Background(), testChannel, testEntry, subs)
	assert.True(t, ok)

	require.Len(t, summarizer.SummarizeCalls(), 2)
	aliceReq := summarizer.SummarizeCalls()[0].Req
	assert.Equal(t, "https://example.com/watch?v=V1", aliceReq.VideoURL)
	assert.Equal(t, "keep it short", aliceReq.Instructions)
	assert.Equal(t, "Tech Channel", aliceReq.ChannelTitle)
	assert.Equal(t, "Go Generics", aliceReq.VideoTitle)
	assert.Empty(t, summarizer.SummarizeCalls()[1].Req.Instructions)

	require.Len(t, sender.SendCalls(), 2)
	msg := sender.SendCalls()[0].Msg
	assert.Equal(t, "alice@example.com", msg.To)
	assert.Equal(t, "New Video Summary: Go Generics", msg.Subject)
	assert.Equal(t, "## Generics\n- **type parameters**", msg.PlainBody)
	assert.Contains(t, msg.HTMLBody, "<h2>Generics</h2>")
	assert.Contains(t, msg.HTMLBody, "<strong>type parameters</strong>")
	assert.Contains(t, msg.HTMLBody, `<a href="https://example.com/watch?v=V1">Go Generics</a>`)
}

func TestDispatcher_Dispatch_SkipsIneligible(t *testing.T) {
	profiles := &mocks.ProfileStoreMock{
		GetProfileFunc: func(_ context.Context, userID string) (*domain.SubscriberProfile, error) {
			switch userID {
			case "disabled":
				return &domain.SubscriberProfile{UserID: userID, NotificationsEnabled: false, NotificationEmail: "d@example.com"}, nil
			case "no-address":
				return &domain.SubscriberProfile{UserID: userID, NotificationsEnabled: true}, nil
			default: // no profile on file
				return nil, nil
			}
		},
		GetPromptOverrideFunc: func(_ context.Context, _, _ string) (string, error) { return "", nil },
	}
	summarizer := &mocks.SummarizerMock{
		SummarizeFunc: func(_ context.Context, _ llm.Request) (string, error) { return "summary", nil },
	}
	sender := &mocks.SenderMock{SendFunc: func(_ context.Context, _ mailer.Message) error { return nil }}

	d := NewDispatcher(profiles, summarizer, sender)
	subs := []domain.Subscription{
		{UserID: "disabled", ChannelID: "UC1"},
		{UserID: "no-address", ChannelID: "UC1"},
		{UserID: "unknown", ChannelID: "UC1"},
	}

	ok := d.Dispatch(context.Background(), testChannel, testEntry, subs)
	assert.True(t, ok, "skipped subscribers are not failures")
	assert.Empty(t, summarizer.SummarizeCalls())
	assert.Empty(t, sender.SendCalls())
}

func TestDispatcher_Dispatch_PartialFailure(t *testing.T) {
	profiles := enabledProfiles(nil)
	summarizer := &mocks.SummarizerMock{
		SummarizeFunc: func(_ context.Context, req llm.Request) (string, error) {
			return "summary", nil
		},
	}
	sendErr := errors.New("smtp down")
	sender := &mocks.SenderMock{
		SendFunc: func(_ context.Context, msg mailer.Message) error {
			if msg.To == "bob@example.com" {
				return sendErr
			}
			return nil
		},
	}

	d := NewDispatcher(profiles, summarizer, sender)
	subs := []domain.Subscription{
		{UserID: "alice", ChannelID: "UC1"},
		{UserID: "bob", ChannelID: "UC1"},
		{UserID: "carol", ChannelID: "UC1"},
	}

	ok := d.Dispatch(context.Background(), testChannel, testEntry, subs)
	assert.False(t, ok)
	assert.Len(t, sender.SendCalls(), 3, "failed subscriber does not stop the batch")
}

func TestDispatcher_Dispatch_Errors(t *testing.T) {
	t.Run("profile lookup error", func(t *testing.T) {
		profiles := &mocks.ProfileStoreMock{
			GetProfileFunc: func(_ context.Context, _ string) (*domain.SubscriberProfile, error) {
				return nil, errors.New("db gone")
			},
		}
		summarizer := &mocks.SummarizerMock{}
		sender := &mocks.SenderMock{}

		d := NewDispatcher(profiles, summarizer, sender)
		ok := d.Dispatch(context.Background(), testChannel, testEntry, []domain.Subscription{{UserID: "alice"}})
		assert.False(t, ok)
		assert.Empty(t, summarizer.SummarizeCalls())
	})

	t.Run("override lookup error", func(t *testing.T) {
		profiles := enabledProfiles(nil)
		profiles.GetPromptOverrideFunc = func(_ context.Context, _, _ string) (string, error) {
			return "", errors.New("db gone")
		}
		summarizer := &mocks.SummarizerMock{}
		sender := &mocks.SenderMock{}

		d := NewDispatcher(profiles, summarizer, sender)
		ok := d.Dispatch(context.Background(), testChannel, testEntry, []domain.Subscription{{UserID: "alice"}})
		assert.False(t, ok)
		assert.Empty(t, summarizer.SummarizeCalls())
	})

	t.Run("content unavailable", func(t *testing.T) {
		profiles := enabledProfiles(nil)
		summarizer := &mocks.SummarizerMock{
			SummarizeFunc: func(_ context.Context, _ llm.Request) (string, error) {
				return "", llm.ErrContentUnavailable
			},
		}
		sender := &mocks.SenderMock{}

		d := NewDispatcher(profiles, summarizer, sender)
		ok := d.Dispatch(context.Background(), testChannel, testEntry, []domain.Subscription{{UserID: "alice"}})
		assert.False(t, ok)
		assert.Empty(t, sender.SendCalls(), "nothing is sent when generation fails")
	})
}

func TestDispatcher_NotifyFailure(t *testing.T) {
	profiles := &mocks.ProfileStoreMock{
		GetProfileFunc: func(_ context.Context, userID string) (*domain.SubscriberProfile, error) {
			if userID == "disabled" {
				return &domain.SubscriberProfile{UserID: userID, NotificationsEnabled: false}, nil
			}
			return &domain.SubscriberProfile{UserID: userID, NotificationsEnabled: true, NotificationEmail: userID + "@example.com"}, nil
		},
	}
	summarizer := &mocks.SummarizerMock{}
	sendErr := errors.New("smtp down")
	sender := &mocks.SenderMock{
		SendFunc: func(_ context.Context, msg mailer.Message) error {
			if msg.To == "bob@example.com" {
				return sendErr
			}
			return nil
		},
	}

	d := NewDispatcher(profiles, summarizer, sender)
	subs := []domain.Subscription{
		{UserID: "alice", ChannelID: "UC1"},
		{UserID: "disabled", ChannelID: "UC1"},
		{UserID: "bob", ChannelID: "UC1"},
	}
	d.NotifyFailure(context.Background(), testChannel, testEntry, subs)

	assert.Empty(t, summarizer.SummarizeCalls(), "failure notice never calls the backend")
	require.Len(t, sender.SendCalls(), 2, "disabled subscriber skipped, send error tolerated")

	msg := sender.SendCalls()[0].Msg
	assert.Equal(t, "Unable to Process Video: Go Generics", msg.Subject)
	assert.Contains(t, msg.PlainBody, "unable to generate a summary")
	assert.Contains(t, msg.PlainBody, "https://example.com/watch?v=V1")
	assert.Contains(t, msg.HTMLBody, "<strong>Go Generics</strong>")
}
