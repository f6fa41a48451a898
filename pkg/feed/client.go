// Package feed fetches channel feeds and extracts the newest entry.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/briefly-app/briefly/pkg/domain"
)

// youtube video id lives in the yt extension namespace of the channel feed
const videoIDPrefix = "yt:video:"

// Client fetches a channel's feed document and reports its latest entry
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// NewClient creates a feed client. baseURL is the feed endpoint without the
// channel_id query parameter, e.g. https://www.youtube.com/feeds/videos.xml
func NewClient(baseURL string, timeout time.Duration, userAgent string) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// LatestEntry fetches the channel feed and returns the first entry in
// document order. Returns nil without error when the feed has no entries or
// the entry carries no usable item identifier.
func (c *Client) LatestEntry(ctx context.Context, channelID string) (*domain.FeedEntry, error) {
	body, err := c.fetch(ctx, channelID)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	if len(parsed.Items) == 0 {
		return nil, nil
	}

	item := parsed.Items[0]
	itemID := extractItemID(item)
	if itemID == "" {
		return nil, nil
	}

	entry := &domain.FeedEntry{
		ItemID: itemID,
		Title:  item.Title,
		Link:   item.Link,
	}
	if entry.Title == "" {
		entry.Title = "Unknown Title"
	}

	switch {
	case item.PublishedParsed != nil:
		entry.Published = *item.PublishedParsed
	case item.Published != "":
		// gofeed leaves non-standard timestamps unparsed, RFC3339 covers
		// the Z-suffixed ISO-8601 the feed source emits
		if ts, perr := time.Parse(time.RFC3339, item.Published); perr == nil {
			entry.Published = ts
		}
	}

	return entry, nil
}

// extractItemID prefers the yt:videoId extension and falls back to the GUID
func extractItemID(item *gofeed.Item) string {
	if ext, ok := item.Extensions["yt"]; ok {
		if ids, ok := ext["videoId"]; ok && len(ids) > 0 && ids[0].Value != "" {
			return ids[0].Value
		}
	}
	if strings.HasPrefix(item.GUID, videoIDPrefix) {
		return strings.TrimPrefix(item.GUID, videoIDPrefix)
	}
	return item.GUID
}

// fetch retrieves the feed document for a channel
func (c *Client) fetch(ctx context.Context, channelID string) (io.ReadCloser, error) {
	feedURL := fmt.Sprintf("%s?channel_id=%s", c.baseURL, url.QueryEscape(channelID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
