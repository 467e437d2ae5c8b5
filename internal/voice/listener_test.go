package voice_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"smartboutique/internal/services"
	"smartboutique/internal/voice"
)

type recordingHandler struct {
	events      []string
	transcripts []string
}

func (h *recordingHandler) Listening()          { h.events = append(h.events, "listening") }
func (h *recordingHandler) Ended()              { h.events = append(h.events, "ended") }
func (h *recordingHandler) EngineError(e error) { h.events = append(h.events, "error") }
func (h *recordingHandler) Transcript(text string) {
	h.events = append(h.events, "result")
	h.transcripts = append(h.transcripts, text)
}

type scriptedRecognizer struct {
	script []voice.Event
}

func (r *scriptedRecognizer) Start(ctx context.Context) (<-chan voice.Event, error) {
	events := make(chan voice.Event, len(r.script))
	for _, e := range r.script {
		events <- e
	}
	close(events)
	return events, nil
}

func (r *scriptedRecognizer) Stop() {}

func TestListenDeliversEventSequence(t *testing.T) {
	handler := &recordingHandler{}
	rec := &scriptedRecognizer{script: []voice.Event{
		{Kind: voice.EventStarted},
		{Kind: voice.EventResult, Transcript: "agregar camisa"},
		{Kind: voice.EventEnded},
	}}

	if err := voice.Listen(context.Background(), rec, handler); err != nil {
		t.Fatalf("listen: %v", err)
	}

	want := []string{"listening", "result", "ended"}
	if len(handler.events) != len(want) {
		t.Fatalf("unexpected event trail: %v", handler.events)
	}
	for i, w := range want {
		if handler.events[i] != w {
			t.Fatalf("event %d: got %q want %q (%v)", i, handler.events[i], w, handler.events)
		}
	}
	if handler.transcripts[0] != "agregar camisa" {
		t.Fatalf("unexpected transcript: %v", handler.transcripts)
	}
}

func TestListenWithoutRecognizerIsUnsupported(t *testing.T) {
	err := voice.Listen(context.Background(), nil, &recordingHandler{})
	if !errors.Is(err, services.ErrUnsupported) {
		t.Fatalf("expected unsupported capability, got %v", err)
	}
}

func TestLineRecognizerEmitsOneUtterance(t *testing.T) {
	rec := voice.NewLineRecognizer(strings.NewReader("dame vestido\n"))
	handler := &recordingHandler{}

	if err := voice.Listen(context.Background(), rec, handler); err != nil {
		t.Fatalf("listen: %v", err)
	}
	if len(handler.transcripts) != 1 || handler.transcripts[0] != "dame vestido" {
		t.Fatalf("unexpected transcripts: %v", handler.transcripts)
	}
	if handler.events[len(handler.events)-1] != "ended" {
		t.Fatalf("expected trailing ended event: %v", handler.events)
	}
}

func TestLineRecognizerEmptyInputEndsWithoutResult(t *testing.T) {
	rec := voice.NewLineRecognizer(strings.NewReader(""))
	handler := &recordingHandler{}

	if err := voice.Listen(context.Background(), rec, handler); err != nil {
		t.Fatalf("listen: %v", err)
	}
	if len(handler.transcripts) != 0 {
		t.Fatalf("expected no transcripts, got %v", handler.transcripts)
	}
}
