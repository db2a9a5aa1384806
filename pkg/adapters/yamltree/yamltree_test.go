package yamltree

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/crossroads/pkg/catalog"
	"github.com/aretw0/crossroads/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const coffee = `
name: coffee
root: awake
nodes:
  - key: awake
    text: Are you awake?
    yes: done
    no: coffee
  - key: coffee
    text: Have a {adjective} coffee.
  - key: done
    text: Carry on.
`

func TestParse(t *testing.T) {
	tree, err := Parse([]byte(coffee))
	require.NoError(t, err)

	assert.Equal(t, "coffee", tree.Name())
	assert.Equal(t, 3, tree.Len())

	root, ok := tree.Node(tree.Root())
	require.True(t, ok)
	assert.Equal(t, "awake", root.Key)

	no, ok := tree.Target(tree.Root(), false)
	require.True(t, ok)
	node, _ := tree.Node(no)
	assert.Equal(t, "Have a {adjective} coffee.", node.Text)
	assert.True(t, tree.IsLeaf(no))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "not yaml", input: "nodes: [", wantErr: ErrInvalidDocument},
		{name: "empty", input: "", wantErr: ErrInvalidDocument},
		{name: "unknown field", input: "nodes:\n  - key: a\n    text: A\n    maybe: b\n", wantErr: ErrInvalidDocument},
		{name: "missing key", input: "nodes:\n  - text: A\n", wantErr: ErrInvalidDocument},
		{name: "single edge", input: "nodes:\n  - key: a\n    text: A?\n    yes: b\n  - key: b\n    text: B\n", wantErr: domain.ErrMalformedTree},
		{name: "unknown target", input: "nodes:\n  - key: a\n    text: A?\n    yes: b\n    no: c\n  - key: b\n    text: B\n", wantErr: domain.ErrMalformedTree},
		{name: "no nodes", input: "name: empty\n", wantErr: domain.ErrMalformedTree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParse_DuplicateKey(t *testing.T) {
	input := `
nodes:
  - key: a
    text: first
  - key: a
    text: second
`
	_, err := Parse([]byte(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedTree)
	assert.Contains(t, err.Error(), `duplicate key "a"`)
}

func TestLoadFile_NameFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garage.yaml")
	content := "nodes:\n  - key: only\n    text: Nothing to ask.\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tree, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "garage", tree.Name())
	assert.True(t, tree.IsLeaf(tree.Root()))
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMarshal_RoundTrip(t *testing.T) {
	for _, name := range catalog.Names() {
		t.Run(name, func(t *testing.T) {
			original, err := catalog.Get(name)
			require.NoError(t, err)

			data, err := Marshal(original)
			require.NoError(t, err)

			loaded, err := Parse(data)
			require.NoError(t, err)

			assert.Equal(t, original.Nodes(), loaded.Nodes())
			assert.Equal(t, original.Edges(), loaded.Edges())
			assert.Equal(t, original.Root(), loaded.Root())
		})
	}
}
