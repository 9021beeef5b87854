package runner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/enfa"
	"github.com/aretw0/enfa/internal/presentation/table"
	"github.com/aretw0/enfa/pkg/domain"
	"github.com/aretw0/enfa/pkg/dsl"
	"github.com/aretw0/enfa/pkg/ports"
	"github.com/aretw0/enfa/pkg/validation"
	"github.com/google/uuid"
)

// Session runs the interactive conversion dialogue over a TextHandler.
type Session struct {
	io        *TextHandler
	converter *enfa.Converter
	store     ports.ConversionStore
	logger    *slog.Logger
	header    func(io.Writer)
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithStore saves every conversion and prints its ID.
func WithStore(store ports.ConversionStore) SessionOption {
	return func(s *Session) {
		s.store = store
	}
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithHeader sets what Run prints before the first automaton.
func WithHeader(header func(io.Writer)) SessionOption {
	return func(s *Session) {
		s.header = header
	}
}

// NewSession creates a session reading through h and converting with conv.
func NewSession(h *TextHandler, conv *enfa.Converter, opts ...SessionOption) *Session {
	s := &Session{io: h, converter: conv}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Run reads and converts automata until the user declines another round.
// Exhausted input ends the session normally.
func (s *Session) Run(ctx context.Context) error {
	if s.header != nil {
		s.header(s.io.Writer)
	}

	for {
		a, err := s.ReadAutomaton(ctx)
		if err != nil {
			return s.finish(err)
		}

		conv, err := s.converter.Convert(ctx, a)
		if err != nil {
			return err
		}
		if err := s.report(conv); err != nil {
			return err
		}
		if err := s.save(ctx, conv); err != nil {
			return err
		}

		again, err := s.io.Confirm(ctx, "\nDo you want to convert another NFA?")
		if err != nil {
			return s.finish(err)
		}
		if !again {
			return s.finish(nil)
		}
	}
}

func (s *Session) finish(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	s.io.Println("\nExiting. Goodbye!")
	return nil
}

// ReadAutomaton asks for each part of an automaton in turn. Every answer is
// checked as soon as it is given and asked again until it is acceptable.
func (s *Session) ReadAutomaton(ctx context.Context) (domain.Automaton, error) {
	s.io.Println("\nEnter NFA information\n")

	states, err := ask(ctx, s, "States (space-separated): ", validation.ParseStates)
	if err != nil {
		return domain.Automaton{}, err
	}

	symbols, err := ask(ctx, s, "Alphabet symbols (space-separated): ", validation.ParseSymbols)
	if err != nil {
		return domain.Automaton{}, err
	}

	start, err := ask(ctx, s, "Start state: ", func(line string) (string, []validation.Warning, error) {
		start, err := validation.ParseStart(line, states)
		return start, nil, err
	})
	if err != nil {
		return domain.Automaton{}, err
	}

	finals, err := s.readFinals(ctx, states)
	if err != nil {
		return domain.Automaton{}, err
	}

	b := dsl.New().States(states...).Symbols(symbols...).Start(start).Final(finals...)
	if err := s.readTransitions(ctx, b, states, symbols); err != nil {
		return domain.Automaton{}, err
	}
	return b.Build()
}

func (s *Session) readFinals(ctx context.Context, states []string) ([]string, error) {
	for {
		line, err := s.io.Prompt(ctx, "Final states (space-separated): ")
		if err != nil {
			return nil, err
		}

		finals, warnings, err := validation.ParseFinals(line, states)
		if validation.IsConfirmable(err) {
			s.io.Println("⚠ Warning: No final states entered. The automaton will accept NO strings.")
			ok, err := s.io.Confirm(ctx, "Continue anyway?")
			if err != nil {
				return nil, err
			}
			if ok {
				return []string{}, nil
			}
			continue
		}
		if err != nil {
			s.io.Printf("❌ %s. Try again.\n", describe(err))
			continue
		}
		s.warn(warnings)
		return finals, nil
	}
}

func (s *Session) readTransitions(ctx context.Context, b *dsl.Builder, states, symbols []string) error {
	s.io.Println("\nEnter transitions: state symbol state")
	s.io.Println("Use e / eps / epsilon / ε for epsilon")
	s.io.Println("Type 'done' to finish\n")

	for {
		line, err := s.io.Prompt(ctx, "Transition: ")
		if err != nil {
			return err
		}
		if validation.IsDone(line) {
			return nil
		}

		t, err := validation.ParseTransition(line, states, symbols)
		switch {
		case errors.Is(err, validation.ErrEmptyLine):
			s.io.Println("⚠ Empty input. Type 'done' to finish or enter a transition.")
		case err != nil:
			s.io.Printf("❌ %s\n", describe(err))
		case !b.Add(t):
			s.io.Printf("⚠ Duplicate transition ignored: %s\n", t)
		}
	}
}

// ask prompts until parse accepts the line, printing its warnings.
func ask[T any](ctx context.Context, s *Session, prompt string, parse func(string) (T, []validation.Warning, error)) (T, error) {
	for {
		line, err := s.io.Prompt(ctx, prompt)
		if err != nil {
			var zero T
			return zero, err
		}

		v, warnings, err := parse(line)
		if err != nil {
			s.io.Printf("❌ %s. Try again.\n", describe(err))
			continue
		}
		s.warn(warnings)
		return v, nil
	}
}

func (s *Session) warn(warnings []validation.Warning) {
	for _, w := range warnings {
		s.io.Printf("⚠ %s\n", w)
	}
}

func (s *Session) report(conv *domain.Conversion) error {
	if !conv.HadEpsilon {
		s.io.Println("\nℹ No ε-transitions found.")
		s.io.Println("This is already a valid NFA.")
		return nil
	}

	s.io.Println("\nEpsilon Closures:")
	if err := table.WriteClosures(s.io.Writer, conv.Source.States, conv.Closures); err != nil {
		return err
	}
	if err := table.WriteSummary(s.io.Writer, conv); err != nil {
		return err
	}
	s.io.Println("\n✔ ε-transitions removed successfully!")
	return nil
}

func (s *Session) save(ctx context.Context, conv *domain.Conversion) error {
	if s.store == nil {
		return nil
	}
	conv.ID = uuid.NewString()
	if err := s.store.Save(ctx, conv.ID, conv); err != nil {
		s.logger.Error("failed to save conversion", "id", conv.ID, "err", err)
		return err
	}
	s.io.Printf("Saved as %s\n", conv.ID)
	return nil
}

// describe renders err for the user: the sentinel suffix added by %w
// wrapping is dropped and the first letter capitalised.
func describe(err error) string {
	msg := err.Error()
	if inner := errors.Unwrap(err); inner != nil {
		msg = strings.TrimSuffix(msg, ": "+inner.Error())
	}
	if msg == "" {
		return msg
	}
	r, size := utf8.DecodeRuneInString(msg)
	return string(unicode.ToUpper(r)) + msg[size:]
}
