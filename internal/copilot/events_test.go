package copilot

import (
	"bufio"
	"bytes"
	"strings"
	"testing"
)

func TestEncode_Ack(t *testing.T) {
	frame := string(Ack().Encode())

	if !strings.HasPrefix(frame, "data: ") {
		t.Fatalf("ack frame missing data prefix: %q", frame)
	}
	if !strings.HasSuffix(frame, "\n\n") {
		t.Fatalf("ack frame missing terminator: %q", frame)
	}
	if !strings.Contains(frame, `"content":""`) {
		t.Errorf("ack frame should carry empty content: %q", frame)
	}
	if !strings.Contains(frame, `"role":"assistant"`) {
		t.Errorf("ack frame should carry the assistant role: %q", frame)
	}
}

func TestEncode_Text(t *testing.T) {
	frame := string(Text("hello there").Encode())

	if !strings.Contains(frame, `"content":"hello there"`) {
		t.Fatalf("text frame missing content: %q", frame)
	}
	if !strings.Contains(frame, `"role":"assistant"`) {
		t.Errorf("text frame should carry the assistant role: %q", frame)
	}
}

func TestEncode_Done(t *testing.T) {
	frame := string(Done().Encode())

	if !strings.Contains(frame, `"finish_reason":"stop"`) {
		t.Fatalf("done frame missing finish reason: %q", frame)
	}
	if !strings.HasSuffix(frame, "data: [DONE]\n\n") {
		t.Fatalf("done frame missing [DONE] marker: %q", frame)
	}
}

func TestEncode_Errors(t *testing.T) {
	frame := string(ErrorsEvent(Error{
		Type:       "agent",
		Code:       "PROCESSING_ERROR",
		Message:    "boom",
		Identifier: "processing_error",
	}).Encode())

	if !strings.HasPrefix(frame, "event: copilot_errors\n") {
		t.Fatalf("errors frame missing event name: %q", frame)
	}
	if !strings.Contains(frame, `"code":"PROCESSING_ERROR"`) {
		t.Errorf("errors frame missing code: %q", frame)
	}
	if !strings.Contains(frame, `"message":"boom"`) {
		t.Errorf("errors frame missing message: %q", frame)
	}
}

func TestStreamSink_WritesInOrder(t *testing.T) {
	var buf bytes.Buffer
	sink := NewStreamSink(bufio.NewWriter(&buf))

	for _, event := range []Event{Ack(), Text("reply"), Done()} {
		if err := sink.Send(event); err != nil {
			t.Fatalf("send: %v", err)
		}
	}

	out := buf.String()
	ack := strings.Index(out, `"content":""`)
	text := strings.Index(out, `"content":"reply"`)
	done := strings.Index(out, "data: [DONE]")
	if ack == -1 || text == -1 || done == -1 {
		t.Fatalf("missing frames in stream: %q", out)
	}
	if !(ack < text && text < done) {
		t.Fatalf("frames out of order: %q", out)
	}
}
