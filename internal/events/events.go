// Package events carries structured progress reporting for the analysis and
// discovery pipelines. Core packages emit events; the host decides how (and
// whether) to render them.
package events

import "github.com/rs/zerolog"

type Event struct {
	Stage   string
	Message string
	Fields  map[string]any
}

type Sink interface {
	Emit(Event)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Emit(Event) {}

// LogSink renders events through a zerolog logger at info level.
type LogSink struct {
	Logger zerolog.Logger
}

func (s LogSink) Emit(e Event) {
	ev := s.Logger.Info().Str("stage", e.Stage)
	for k, v := range e.Fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(e.Message)
}

// Emit sends an event to sink, tolerating a nil sink.
func Emit(sink Sink, stage, message string, fields map[string]any) {
	if sink == nil {
		return
	}
	sink.Emit(Event{Stage: stage, Message: message, Fields: fields})
}
