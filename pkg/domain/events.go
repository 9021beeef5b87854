package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventConvertStart EventType = "convert_start"
	EventConvertDone  EventType = "convert_done"
)

// ConversionEvent describes one run of the conversion pipeline.
type ConversionEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	Type      EventType     `json:"type"`
	States    int           `json:"states"`
	Symbols   int           `json:"symbols"`
	Epsilon   bool          `json:"epsilon"`
	Duration  time.Duration `json:"duration,omitempty"`
	Err       error         `json:"-"`
}

// ConversionHooks defines callbacks for converter observability.
// Nil callbacks are skipped.
type ConversionHooks struct {
	OnConvertStart func(context.Context, *ConversionEvent)
	OnConvertDone  func(context.Context, *ConversionEvent)
}
