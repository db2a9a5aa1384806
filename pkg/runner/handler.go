package runner

import (
	"context"
)

// Frame is the content of one node as presented to the user.
type Frame struct {
	Session  string `json:"session,omitempty"`
	Tree     string `json:"tree"`
	Node     string `json:"node"`
	Content  string `json:"content"`
	Terminal bool   `json:"terminal"`
	Step     int    `json:"step"`
}

// PromptKind tells handlers what kind of line is being requested.
type PromptKind string

const (
	// PromptAnswer requests a yes/no answer to the current question.
	PromptAnswer PromptKind = "answer"
	// PromptWord requests a fill-in word for a placeholder.
	PromptWord PromptKind = "word"
)

// Prompt describes a line requested from the user.
type Prompt struct {
	Kind PromptKind `json:"kind"`
	Text string     `json:"prompt"`
	Slot string     `json:"slot,omitempty"`
}

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI/TUI) and JSON (Structured) modes.
type IOHandler interface {
	// Output presents the content of the current node.
	Output(ctx context.Context, frame Frame) error

	// Ask presents the prompt and reads one sanitized line.
	// It returns io.EOF when the input is exhausted and ctx.Err() when cancelled.
	Ask(ctx context.Context, prompt Prompt) (string, error)

	// SystemOutput presents a meta-message to the user (e.g. invalid input, status updates).
	// This is distinct from content rendering.
	SystemOutput(ctx context.Context, msg string) error
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for TUI rendering (markdown to ANSI) without coupling the core package.
type ContentRenderer func(string) (string, error)
