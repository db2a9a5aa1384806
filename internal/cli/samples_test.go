package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var samples = filepath.Join("..", "..", "examples", "trees")

func TestSampleTrees_Validate(t *testing.T) {
	sources := map[string]TreeSource{
		"yaml":     {File: filepath.Join(samples, "houseplant.yaml")},
		"hcl":      {File: filepath.Join(samples, "bread.hcl")},
		"markdown": {Dir: filepath.Join(samples, "coffee")},
	}
	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, Validate(context.Background(), &out, src))
			assert.Contains(t, out.String(), "7 nodes (3 questions, 4 leaves)")
		})
	}
}

func TestSampleTrees_Session(t *testing.T) {
	var out bytes.Buffer
	err := RunSession(context.Background(), RunOptions{
		Source:   TreeSource{Dir: filepath.Join(samples, "coffee")},
		Headless: true,
		Stdin:    strings.NewReader("no\nyes\nsoothing\n"),
		Stdout:   &out,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out.String(), "Have a cup of soothing tea.\n"), out.String())
}
