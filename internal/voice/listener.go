package voice

import "context"

// Handler receives the listening session's lifecycle callbacks. The
// storefront session implements it to drive the status line and the cart.
type Handler interface {
	// Listening fires when the engine starts capturing audio.
	Listening()
	// Transcript delivers one final utterance.
	Transcript(text string)
	// EngineError reports a recognition failure.
	EngineError(err error)
	// Ended fires when the session finishes.
	Ended()
}

// Listen runs one recognition session against the handler. A nil recognizer
// means the environment has no speech support; the handler is told nothing
// and ErrUnsupported-classified handling is left to the caller's status
// message.
func Listen(ctx context.Context, rec Recognizer, h Handler) error {
	if rec == nil {
		return ErrNoRecognizer
	}
	events, err := rec.Start(ctx)
	if err != nil {
		return err
	}
	for event := range events {
		switch event.Kind {
		case EventStarted:
			h.Listening()
		case EventResult:
			h.Transcript(event.Transcript)
		case EventError:
			h.EngineError(event.Err)
		case EventEnded:
			h.Ended()
		}
	}
	return nil
}
