package runner

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestTextHandler_Output(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf,
		WithTextHandlerRenderer(func(s string) (string, error) {
			return "Rendered: " + s, nil
		}),
	)

	err := handler.Output(context.Background(), Frame{Content: "Hello World", Terminal: true})
	require.NoError(t, err)
	assert.Equal(t, "Rendered: Hello World\n", outBuf.String())
}

func TestTextHandler_QuestionSharesPromptLine(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("maybe\nyes\n"), outBuf)
	ctx := context.Background()

	require.NoError(t, handler.Output(ctx, Frame{Content: "Ready?"}))
	first, err := handler.Ask(ctx, Prompt{Kind: PromptAnswer, Text: AnswerPrompt})
	require.NoError(t, err)
	assert.Equal(t, "maybe", first)

	require.NoError(t, handler.SystemOutput(ctx, InvalidAnswerMessage))
	second, err := handler.Ask(ctx, Prompt{Kind: PromptAnswer, Text: AnswerPrompt})
	require.NoError(t, err)
	assert.Equal(t, "yes", second)

	assert.Equal(t, "Ready? (yes/no): "+InvalidAnswerMessage+"\nReady? (yes/no): ", outBuf.String())
}

func TestTextHandler_AskAnswer(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("  Yes \n"), outBuf)

	val, err := handler.Ask(context.Background(), Prompt{Kind: PromptAnswer, Text: AnswerPrompt})
	require.NoError(t, err)
	assert.Equal(t, "Yes", val)
	assert.Equal(t, "(yes/no): ", outBuf.String())
}

func TestTextHandler_AskWord(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader("fence"), outBuf)

	val, err := handler.Ask(context.Background(), Prompt{Kind: PromptWord, Text: "Please enter a noun:"})
	require.NoError(t, err)
	assert.Equal(t, "fence", val, "a last line without newline is still read")
	assert.Equal(t, "Please enter a noun:\n", outBuf.String())
}

func TestTextHandler_Input_Sanitization_Retry(t *testing.T) {
	badInput := strings.Repeat("A", DefaultMaxInputSize+1)
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(badInput+"\nSmall valid input\n"), outBuf)

	val, err := handler.Ask(context.Background(), Prompt{Kind: PromptAnswer, Text: ">"})
	require.NoError(t, err)
	assert.Equal(t, "Small valid input", val)
	assert.Contains(t, outBuf.String(), "input exceeds maximum allowed size")
	assert.Equal(t, 2, strings.Count(outBuf.String(), "> "))
}

func TestTextHandler_EOF(t *testing.T) {
	handler := NewTextHandler(strings.NewReader(""), io.Discard)

	_, err := handler.Ask(context.Background(), Prompt{Kind: PromptAnswer, Text: AnswerPrompt})
	assert.ErrorIs(t, err, io.EOF)
}

func TestTextHandler_Cancelled(t *testing.T) {
	reader, writer := io.Pipe()
	defer writer.Close()

	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(reader, outBuf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := handler.Ask(ctx, Prompt{Kind: PromptAnswer, Text: AnswerPrompt})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, outBuf.String())
}

func TestTextHandler_SystemOutput(t *testing.T) {
	outBuf := &bytes.Buffer{}
	handler := NewTextHandler(strings.NewReader(""), outBuf)

	require.NoError(t, handler.SystemOutput(context.Background(), InvalidAnswerMessage))
	assert.Equal(t, InvalidAnswerMessage+"\n", outBuf.String())
}

func TestTextHandler_PumpStopsAtEOF(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	handler := NewTextHandler(strings.NewReader("yes\nno\n"), io.Discard)
	ctx := context.Background()

	for _, want := range []string{"yes", "no"} {
		got, err := handler.Ask(ctx, Prompt{Kind: PromptAnswer, Text: AnswerPrompt})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := handler.Ask(ctx, Prompt{Kind: PromptAnswer, Text: AnswerPrompt})
	assert.ErrorIs(t, err, io.EOF)
}
