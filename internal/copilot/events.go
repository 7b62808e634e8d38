// Package copilot implements the GitHub Copilot chat extension wire
// protocol: the request envelope an agent receives, the ECDSA body
// signature GitHub attaches to it, and the server-sent event frames a
// turn is streamed back as.
package copilot

import (
	"bytes"
	"encoding/json"
)

// EventKind tags the variant of a protocol event.
type EventKind int

const (
	EventAck EventKind = iota
	EventText
	EventDone
	EventErrors
)

// Error is one structured detail carried by an errors frame.
type Error struct {
	Type       string `json:"type"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Identifier string `json:"identifier"`
}

// Event is a single immutable protocol event. Build one with Ack, Text,
// Done or ErrorsEvent and encode it with Encode.
type Event struct {
	Kind    EventKind
	Content string
	Errors  []Error
}

// Ack signals the turn has been accepted and work has begun.
func Ack() Event { return Event{Kind: EventAck} }

// Text carries a chunk of natural-language content for display.
func Text(content string) Event { return Event{Kind: EventText, Content: content} }

// Done is the terminal success marker of a turn.
func Done() Event { return Event{Kind: EventDone} }

// ErrorsEvent is the terminal failure marker of a turn.
func ErrorsEvent(errs ...Error) Event { return Event{Kind: EventErrors, Errors: errs} }

type chatDelta struct {
	Content *string `json:"content"`
	Role    string  `json:"role,omitempty"`
}

type chatChoice struct {
	Index        int       `json:"index"`
	FinishReason string    `json:"finish_reason,omitempty"`
	Delta        chatDelta `json:"delta"`
}

type chatFrame struct {
	Choices []chatChoice `json:"choices"`
}

// Encode renders the event as SSE frame bytes in the layout the Copilot
// chat client expects.
func (e Event) Encode() []byte {
	var buf bytes.Buffer
	switch e.Kind {
	case EventErrors:
		data, _ := json.Marshal(e.Errors)
		buf.WriteString("event: copilot_errors\ndata: ")
		buf.Write(data)
		buf.WriteString("\n\n")
	case EventDone:
		data, _ := json.Marshal(chatFrame{Choices: []chatChoice{{
			FinishReason: "stop",
		}}})
		buf.WriteString("data: ")
		buf.Write(data)
		buf.WriteString("\n\ndata: [DONE]\n\n")
	default:
		// Ack is a text frame with empty content.
		content := e.Content
		data, _ := json.Marshal(chatFrame{Choices: []chatChoice{{
			Delta: chatDelta{Content: &content, Role: "assistant"},
		}}})
		buf.WriteString("data: ")
		buf.Write(data)
		buf.WriteString("\n\n")
	}
	return buf.Bytes()
}
