package voice

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// EventKind enumerates the speech engine's event sequence.
type EventKind int

const (
	// EventStarted fires when the engine begins listening.
	EventStarted EventKind = iota
	// EventResult carries one final transcript per utterance.
	EventResult
	// EventError reports an engine failure.
	EventError
	// EventEnded fires when the engine stops, with or without a result.
	EventEnded
)

// Event is one entry in a recognition session's event stream.
type Event struct {
	Kind       EventKind
	Transcript string
	Err        error
}

// Recognizer is the injected speech capability: recognition itself happens
// elsewhere, the interpreter only reacts to the event sequence. A nil
// Recognizer models an environment without speech support.
type Recognizer interface {
	// Start begins one recognition session. The returned channel delivers
	// the event sequence and is closed when the session ends.
	Start(ctx context.Context) (<-chan Event, error)
	// Stop asks a running session to finish early.
	Stop()
}

// LineRecognizer adapts a line-oriented reader (typically the terminal) to
// the Recognizer interface: one line is one utterance.
type LineRecognizer struct {
	reader   *bufio.Reader
	stopOnce sync.Once
	stopped  chan struct{}
}

// NewLineRecognizer wraps the reader. Each Start consumes a single line.
func NewLineRecognizer(r io.Reader) *LineRecognizer {
	return &LineRecognizer{
		reader:  bufio.NewReader(r),
		stopped: make(chan struct{}),
	}
}

// Start reads one line and emits the started/result/ended sequence, or
// started/error/ended when reading fails before any text arrives.
func (r *LineRecognizer) Start(ctx context.Context) (<-chan Event, error) {
	events := make(chan Event, 4)
	go func() {
		defer close(events)
		events <- Event{Kind: EventStarted}

		line, err := r.reader.ReadString('\n')
		line = strings.TrimSpace(line)

		select {
		case <-r.stopped:
			events <- Event{Kind: EventEnded}
			return
		case <-ctx.Done():
			events <- Event{Kind: EventEnded}
			return
		default:
		}

		if line != "" {
			events <- Event{Kind: EventResult, Transcript: line}
		} else if err != nil && err != io.EOF {
			events <- Event{Kind: EventError, Err: err}
		}
		events <- Event{Kind: EventEnded}
	}()
	return events, nil
}

// Stop suppresses results from the in-flight read. The blocking read itself
// finishes at the next newline or EOF.
func (r *LineRecognizer) Stop() {
	r.stopOnce.Do(func() { close(r.stopped) })
}
