package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/briefly-app/briefly/pkg/config"
)

// default system prompt for the summarizer
const defaultSystemPrompt = `You are an assistant that writes summaries of newly published videos for email delivery.
Work from the video URL you are given. Produce a concise markdown summary:
- start with a short heading naming the topic
- follow with 3-7 bullet points covering the key points, findings and takeaways
- bold the most important terms
- do not include preambles like "This video discusses"; write about the content directly
If the subscriber provided additional instructions, follow them even when they conflict with the format above.`

// OpenAIClient summarizes via an OpenAI-compatible chat completion API
type OpenAIClient struct {
	client      *openai.Client
	config      config.OpenAIConfig
	systemMsg   string
	temperature float32
	detector    *UnavailableDetector
}

// NewOpenAIClient creates an OpenAI-compatible summarizer client
func NewOpenAIClient(cfg config.OpenAIConfig, detector *UnavailableDetector) *OpenAIClient {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	// use custom system prompt if provided, otherwise use default
	systemMsg := cfg.SystemPrompt
	if systemMsg == "" {
		systemMsg = defaultSystemPrompt
	}

	// omitted temperature falls back to 0.3, an explicit 0 stays 0
	temperature := float32(0.3)
	if cfg.Temperature != nil {
		temperature = *cfg.Temperature
	}

	if detector == nil {
		detector = NewUnavailableDetector()
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(clientConfig),
		config:      cfg,
		systemMsg:   systemMsg,
		temperature: temperature,
		detector:    detector,
	}
}

// Summarize requests a summary of the video behind req.VideoURL. Returns
// ErrContentUnavailable when the model apologizes instead of summarizing.
func (c *OpenAIClient) Summarize(ctx context.Context, req Request) (string, error) {
	chatReq := openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: c.temperature,
		MaxTokens:   c.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: c.systemMsg,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: c.buildPrompt(req),
			},
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}

	summary := resp.Choices[0].Message.Content
	if err := c.detector.Check(summary); err != nil {
		return "", err
	}
	return summary, nil
}

// buildPrompt creates the user prompt for a summary request
func (c *OpenAIClient) buildPrompt(req Request) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Summarize the video at %s", req.VideoURL))
	if req.VideoTitle != "" {
		sb.WriteString(fmt.Sprintf(" (%q)", req.VideoTitle))
	}
	sb.WriteString(".\n")
	if req.Instructions != "" {
		sb.WriteString("\nAdditional instructions from the subscriber:\n")
		sb.WriteString(req.Instructions)
		sb.WriteString("\n")
	}
	return sb.String()
}
