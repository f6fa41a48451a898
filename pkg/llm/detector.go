package llm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrContentUnavailable indicates the backend produced an apology instead
// of a summary because the source content could not be retrieved
var ErrContentUnavailable = errors.New("source content unavailable")

// defaultFailPhrases are the known apologies the backend produces when the
// video transcript cannot be retrieved. Substring matching against
// generated text is fragile; the detector is a separate seam so it can be
// swapped for a structural status signal if the backend ever grows one.
var defaultFailPhrases = []string{
	"I couldn't retrieve the transcript",
	"subtitles or transcripts are disabled for this video",
	"transcripts are disabled for this video",
	"I wasn't able to retrieve the transcript",
	"it seems that subtitles are disabled",
	"I cannot access the transcript",
}

// UnavailableDetector scans generated text for content-unavailable apologies
type UnavailableDetector struct {
	phrases []string
}

// NewUnavailableDetector creates a detector, using the default phrase list
// when no phrases are given
func NewUnavailableDetector(phrases ...string) *UnavailableDetector {
	if len(phrases) == 0 {
		phrases = defaultFailPhrases
	}
	return &UnavailableDetector{phrases: phrases}
}

// Check returns ErrContentUnavailable (wrapped with the matched phrase)
// when the text contains a known apology, nil otherwise
func (d *UnavailableDetector) Check(text string) error {
	for _, phrase := range d.phrases {
		if strings.Contains(text, phrase) {
			return fmt.Errorf("detected %q: %w", phrase, ErrContentUnavailable)
		}
	}
	return nil
}
