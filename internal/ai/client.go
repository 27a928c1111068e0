package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

type Client struct {
	client *openai.Client
	model  string
}

func New(apiKey, baseURL, model string) *Client {
	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// EventDraft is the structured result of parsing a free-text entry like
// "dentist for Ben on Tuesday 15:00-16:00". Times use HH:MM, the date
// YYYY-MM-DD; empty fields were not mentioned.
type EventDraft struct {
	Title       string `json:"title"`
	Person      string `json:"person"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Description string `json:"description"`
}

const systemPromptTemplate = `You turn one natural-language appointment entry into JSON.

Current time: %s (week starts Monday).

Respond with ONLY a JSON object, no prose:
{"title": "...", "person": "...", "category": "...", "date": "YYYY-MM-DD",
 "start_time": "HH:MM", "end_time": "HH:MM", "description": "..."}

Rules:
- title is required; keep it short.
- person is the family member the entry is for, if named.
- category must be one of: %s. Leave empty if unclear.
- Resolve relative dates ("tomorrow", "Tuesday") against the current time.
- If no end time is given, use start time plus one hour.
- Leave fields you cannot determine empty.`

// ParseEvent asks the model for an event draft. The caller validates the
// draft; this function only guarantees syntactically valid JSON.
func (c *Client) ParseEvent(ctx context.Context, text string, now time.Time, categories []string) (*EventDraft, error) {
	prompt := fmt.Sprintf(systemPromptTemplate,
		now.Format("2006-01-02 15:04 Monday"),
		strings.Join(categories, ", "))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty completion response")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = stripCodeFence(content)

	draft := &EventDraft{}
	if err := json.Unmarshal([]byte(content), draft); err != nil {
		return nil, fmt.Errorf("parse completion JSON: %w", err)
	}
	if draft.Title == "" {
		return nil, fmt.Errorf("completion missing title")
	}
	return draft, nil
}

// stripCodeFence removes a ```json ... ``` wrapper some models insist on.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
