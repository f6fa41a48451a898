// Package llm provides clients for the summary generation backends: the
// agent runtime (streamed HTTP) and any OpenAI-compatible API. Both share
// the Request shape and the content-unavailable detection seam.
package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-pkgz/lgr"

	"github.com/briefly-app/briefly/pkg/config"
)

// Request describes a single summarization call. ChannelTitle and
// VideoTitle feed the session identifier only, the backend works from the
// video URL and the optional per-subscriber instructions.
type Request struct {
	VideoURL     string
	Instructions string
	ChannelTitle string
	VideoTitle   string
}

// stream framings the agent runtime may use
const (
	StreamFormatRaw    = "raw"    // response body is the generated text
	StreamFormatEvents = "events" // SSE frames with base64 chunk payloads
)

// AgentClient invokes the agent runtime over HTTP
type AgentClient struct {
	endpoint     string
	streamFormat string
	client       *http.Client
	detector     *UnavailableDetector
}

// NewAgentClient creates an agent runtime client
func NewAgentClient(cfg config.AgentConfig, detector *UnavailableDetector) *AgentClient {
	if detector == nil {
		detector = NewUnavailableDetector()
	}
	return &AgentClient{
		endpoint:     cfg.Endpoint,
		streamFormat: cfg.StreamFormat,
		client:       &http.Client{Timeout: cfg.Timeout},
		detector:     detector,
	}
}

// agentPayload is the invocation body the runtime expects
type agentPayload struct {
	VideoURL               string `json:"videoUrl"`
	AdditionalInstructions string `json:"additionalInstructions"`
}

// agentEvent is one structured frame of an events-format stream
type agentEvent struct {
	Chunk struct {
		Bytes string `json:"bytes"`
	} `json:"chunk"`
}

// Summarize invokes the agent runtime and concatenates the streamed
// response into the generated text. Returns ErrContentUnavailable when the
// text is a known could-not-retrieve apology.
func (c *AgentClient) Summarize(ctx context.Context, req Request) (string, error) {
	payload, err := json.Marshal(agentPayload{VideoURL: req.VideoURL, AdditionalInstructions: req.Instructions})
	if err != nil {
		return "", fmt.Errorf("marshal agent payload: %w", err)
	}

	sessionID := newSessionID(req.ChannelTitle, req.VideoTitle)
	lgr.Printf("[DEBUG] invoking agent for %s, session %s", req.VideoURL, sessionID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create agent request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Session-Id", sessionID)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("invoke agent: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("agent returned status %d", resp.StatusCode)
	}

	var summary string
	switch c.streamFormat {
	case StreamFormatEvents:
		summary, err = readEventStream(resp)
	default:
		summary, err = readRawStream(resp)
	}
	if err != nil {
		return "", err
	}

	if summary == "" {
		return "", fmt.Errorf("agent returned empty response")
	}
	if err := c.detector.Check(summary); err != nil {
		return "", err
	}
	return summary, nil
}

// readRawStream concatenates the response body as-is
func readRawStream(resp *http.Response) (string, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteString("\n")
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read agent stream: %w", err)
	}
	return strings.TrimSuffix(sb.String(), "\n"), nil
}

// readEventStream decodes SSE data frames carrying base64 chunk payloads.
// Frames that don't parse are skipped, a partially usable stream is better
// than none.
func readEventStream(resp *http.Response) (string, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}

		var event agentEvent
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event); err != nil {
			lgr.Printf("[WARN] skipping unparsable agent event: %v", err)
			continue
		}
		if event.Chunk.Bytes == "" {
			continue
		}

		decoded, err := base64.StdEncoding.DecodeString(event.Chunk.Bytes)
		if err != nil {
			lgr.Printf("[WARN] skipping undecodable agent chunk: %v", err)
			continue
		}
		sb.Write(decoded)
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read agent event stream: %w", err)
	}
	return sb.String(), nil
}
