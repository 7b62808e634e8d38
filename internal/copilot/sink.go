package copilot

import "bufio"

// EventSink receives protocol events in emission order.
type EventSink interface {
	Send(Event) error
}

// StreamSink writes encoded events to a buffered writer, flushing after
// each one so a streaming client can render progressively.
type StreamSink struct {
	w *bufio.Writer
}

func NewStreamSink(w *bufio.Writer) *StreamSink {
	return &StreamSink{w: w}
}

func (s *StreamSink) Send(e Event) error {
	if _, err := s.w.Write(e.Encode()); err != nil {
		return err
	}
	return s.w.Flush()
}
