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

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer

	// question is the last non-terminal content; inline is set while the
	// cursor still sits at the end of it.
	question string
	inline   bool

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// initPump starts the goroutine that reads lines, so Ask can honor cancellation
// while a read is blocked.
func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

func (h *TextHandler) pump() {
	defer close(h.inputChan)
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
			return
		}
	}
}

func (h *TextHandler) Output(ctx context.Context, frame Frame) error {
	output := frame.Content
	if h.Renderer != nil {
		if rendered, err := h.Renderer(output); err == nil {
			output = rendered
		}
	}
	output = strings.TrimSpace(output)
	if frame.Terminal {
		h.question, h.inline = "", false
		_, err := fmt.Fprintln(h.Writer, output)
		return err
	}
	h.question, h.inline = output, true
	_, err := fmt.Fprint(h.Writer, output+" ")
	return err
}

func (h *TextHandler) Ask(ctx context.Context, prompt Prompt) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			h.printPrompt(prompt)
		}

		select {
		case <-ctx.Done():
			// Important: don't print anything here, just exit silently
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}

			clean, err := SanitizeInput(res.text)
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

// printPrompt keeps answers on the question line and words on their own line.
// A repeated answer prompt repeats the question.
func (h *TextHandler) printPrompt(prompt Prompt) {
	if prompt.Kind == PromptWord {
		h.breakLine()
		fmt.Fprintln(h.Writer, prompt.Text)
		return
	}
	if h.question != "" && !h.inline {
		fmt.Fprint(h.Writer, h.question+" ")
	}
	h.inline = false
	fmt.Fprint(h.Writer, prompt.Text+" ")
}

// breakLine ends a question line that no answer prompt followed.
func (h *TextHandler) breakLine() {
	if h.inline {
		fmt.Fprintln(h.Writer)
		h.inline = false
	}
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	h.breakLine()
	_, err := fmt.Fprintln(h.Writer, msg)
	return err
}
