package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// Event types emitted by JSONHandler, one JSON object per line.
const (
	EventNode   = "node"
	EventAsk    = "ask"
	EventSystem = "system"
)

// Event is one line of JSONHandler output.
type Event struct {
	Type    string  `json:"type"`
	Frame   *Frame  `json:"frame,omitempty"`
	Prompt  *Prompt `json:"prompt,omitempty"`
	Message string  `json:"message,omitempty"`
}

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Output(ctx context.Context, frame Frame) error {
	return h.Encoder.Encode(Event{Type: EventNode, Frame: &frame})
}

// Ask emits the prompt and reads one line.
// A line may be a JSON string ("yes"), a JSON boolean (true) or raw text.
func (h *JSONHandler) Ask(ctx context.Context, prompt Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := h.Encoder.Encode(Event{Type: EventAsk, Prompt: &prompt}); err != nil {
		return "", err
	}

	text, err := h.Reader.ReadString('\n')
	if err != nil && (err != io.EOF || strings.TrimSpace(text) == "") {
		return "", err
	}
	text = strings.TrimSpace(text)

	var val any
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		switch v := val.(type) {
		case string:
			text = v
		case bool:
			text = "no"
			if v {
				text = "yes"
			}
		}
	}

	return SanitizeInput(text)
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(Event{Type: EventSystem, Message: msg})
}
