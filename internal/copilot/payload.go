package copilot

import (
	"encoding/json"
	"fmt"
)

// Message is one chat message in the request envelope.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Payload is the envelope Copilot posts to an agent endpoint.
type Payload struct {
	Messages        []Message `json:"messages"`
	CopilotThreadID string    `json:"copilot_thread_id,omitempty"`
	Agent           string    `json:"agent,omitempty"`
}

// ParsePayload decodes the raw request body into the chat envelope.
func ParsePayload(raw []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode request payload: %w", err)
	}
	return &p, nil
}

// LatestUserMessage returns the content of the most recent user-authored
// message, or the empty string when there is none.
func (p *Payload) LatestUserMessage() string {
	for i := len(p.Messages) - 1; i >= 0; i-- {
		if p.Messages[i].Role == "user" {
			return p.Messages[i].Content
		}
	}
	return ""
}
