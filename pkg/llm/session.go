package llm

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// backend session id constraints
const (
	sessionIDMinLength = 33
	sessionIDMaxLength = 95
)

// title budget within the session id, the uuid takes the rest
const (
	sessionChannelMaxLength = 20
	sessionVideoMaxLength   = 38
)

var (
	reIllegalChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	reHyphenRuns   = regexp.MustCompile(`-+`)
)

// newSessionID builds a unique backend session identifier from the channel
// and video titles plus a random component. The uuid alone satisfies the
// minimum length, titles are advisory and trimmed to their budgets.
func newSessionID(channelTitle, videoTitle string) string {
	parts := make([]string, 0, 3)
	if c := cleanSessionPart(channelTitle, sessionChannelMaxLength); c != "" {
		parts = append(parts, c)
	}
	if v := cleanSessionPart(videoTitle, sessionVideoMaxLength); v != "" {
		parts = append(parts, v)
	}
	parts = append(parts, uuid.NewString())

	id := strings.Join(parts, "-")
	if len(id) > sessionIDMaxLength {
		id = id[:sessionIDMaxLength]
	}
	if len(id) < sessionIDMinLength {
		id = id + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")
		if len(id) > sessionIDMaxLength {
			id = id[:sessionIDMaxLength]
		}
	}
	return id
}

// cleanSessionPart reduces a title to the allowed character set and budget
func cleanSessionPart(s string, maxLen int) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = reIllegalChars.ReplaceAllString(s, "")
	s = reHyphenRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxLen {
		s = s[:maxLen]
	}
	return s
}
