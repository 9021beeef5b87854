package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// TextHandler reads answers line by line and writes prompts and messages.
// Reads happen on a pump goroutine so that a pending read never blocks
// cancellation.
type TextHandler struct {
	Reader *bufio.Reader
	Writer io.Writer

	// MaxLineLength caps an answer in characters; zero means DefaultMaxLineLength.
	MaxLineLength int

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// NewTextHandler creates a handler for standard text IO.
// Nil arguments fall back to Stdin and Stdout.
func NewTextHandler(r io.Reader, w io.Writer) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')

		// If we got text (even with EOF), send it
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}

		if err != nil {
			if err != io.EOF {
				h.inputChan <- inputResult{err: err}
			}
			close(h.inputChan)
			return
		}
	}
}

// Printf writes a formatted message.
func (h *TextHandler) Printf(format string, args ...any) {
	fmt.Fprintf(h.Writer, format, args...)
}

// Println writes a message followed by a newline.
func (h *TextHandler) Println(args ...any) {
	fmt.Fprintln(h.Writer, args...)
}

// Prompt writes prompt and returns the next cleaned line.
// Lines that are too long or not UTF-8 are reported and asked again.
// It returns io.EOF once the input is exhausted.
func (h *TextHandler) Prompt(ctx context.Context, prompt string) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, prompt)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}

			clean, err := cleanLine(res.text, h.maxLineLength())
			if err != nil {
				fmt.Fprintf(h.Writer, "❌ %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

func (h *TextHandler) maxLineLength() int {
	if h.MaxLineLength > 0 {
		return h.MaxLineLength
	}
	return DefaultMaxLineLength
}

// Confirm asks a yes/no question; only "y" (any case) counts as yes.
func (h *TextHandler) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := h.Prompt(ctx, question+" (y/n): ")
	if err != nil {
		return false, err
	}
	return strings.EqualFold(answer, "y"), nil
}
