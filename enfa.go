package enfa

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/enfa/pkg/domain"
	"github.com/aretw0/enfa/pkg/engine"
	"github.com/aretw0/enfa/pkg/validation"
)

// Converter is the high-level entry point for the enfa library.
// It validates input, runs the engine pipeline and reports to observers.
// A Converter holds no per-conversion state and is safe for concurrent use.
type Converter struct {
	hooks   domain.ConversionHooks
	logger  *slog.Logger
	workers int
}

// Option defines a functional option for configuring the Converter.
type Option func(*Converter)

// WithHooks registers observability hooks.
func WithHooks(hooks domain.ConversionHooks) Option {
	return func(c *Converter) {
		c.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the converter.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Converter) {
		c.logger = logger
	}
}

// WithWorkers spreads closure computation over n goroutines.
// Values below 2 keep the computation sequential (the default).
func WithWorkers(n int) Option {
	return func(c *Converter) {
		c.workers = n
	}
}

// New initializes a new Converter.
func New(opts ...Option) *Converter {
	c := &Converter{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// Convert removes every ε-transition from a.
// The automaton is validated first; an invalid one yields an error wrapping
// a *validation.AggregateError. An ε-free automaton is returned unchanged
// with HadEpsilon set to false.
func (c *Converter) Convert(ctx context.Context, a domain.Automaton) (*domain.Conversion, error) {
	if err := validation.Validate(a); err != nil {
		return nil, fmt.Errorf("invalid automaton: %w", err)
	}

	started := time.Now()
	event := &domain.ConversionEvent{
		Timestamp: started,
		Type:      domain.EventConvertStart,
		States:    len(a.States),
		Symbols:   len(a.Symbols),
		Epsilon:   engine.HasEpsilon(a),
	}
	if c.hooks.OnConvertStart != nil {
		c.hooks.OnConvertStart(ctx, event)
	}

	conv, err := c.convert(ctx, a.Clone(), event.Epsilon)

	done := *event
	done.Type = domain.EventConvertDone
	done.Timestamp = time.Now()
	done.Duration = done.Timestamp.Sub(started)
	done.Err = err
	if c.hooks.OnConvertDone != nil {
		c.hooks.OnConvertDone(ctx, &done)
	}

	if err != nil {
		c.logger.Warn("conversion aborted", "states", len(a.States), "err", err)
		return nil, err
	}
	c.logger.Debug("conversion finished",
		"states", len(a.States),
		"symbols", len(a.Symbols),
		"had_epsilon", conv.HadEpsilon,
		"finals", len(conv.Finals),
		"duration", done.Duration,
	)
	return conv, nil
}

func (c *Converter) convert(ctx context.Context, a domain.Automaton, hasEpsilon bool) (*domain.Conversion, error) {
	conv := &domain.Conversion{
		CreatedAt:  time.Now().UTC(),
		Source:     a,
		HadEpsilon: hasEpsilon,
	}

	if !hasEpsilon {
		conv.Transitions = a.Transitions.WithoutEpsilon()
		conv.Finals = append([]string{}, a.Finals...)
		return conv, nil
	}

	closures, err := c.closures(ctx, a)
	if err != nil {
		return nil, err
	}
	conv.Closures = closures
	conv.Transitions, conv.Finals = engine.EliminateEpsilon(a, closures)
	return conv, nil
}

// Closures validates a and returns the ε-closure of every state.
func (c *Converter) Closures(ctx context.Context, a domain.Automaton) (domain.Closures, error) {
	if err := validation.Validate(a); err != nil {
		return nil, fmt.Errorf("invalid automaton: %w", err)
	}
	return c.closures(ctx, a)
}

// Closure validates a and returns the ε-closure of a single state.
// Unknown states yield an error wrapping domain.ErrUnknownState.
func (c *Converter) Closure(a domain.Automaton, state string) ([]string, error) {
	if err := validation.Validate(a); err != nil {
		return nil, fmt.Errorf("invalid automaton: %w", err)
	}
	if !a.HasState(state) {
		return nil, fmt.Errorf("closure of '%s': %w", state, domain.ErrUnknownState)
	}
	return engine.EpsilonClosure(a, state), nil
}

func (c *Converter) closures(ctx context.Context, a domain.Automaton) (domain.Closures, error) {
	if c.workers > 1 {
		return engine.AllEpsilonClosuresParallel(ctx, a, c.workers)
	}
	return engine.AllEpsilonClosures(a), nil
}
