package hcltree

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
root = "awake"

node "awake" {
  text = "Are you awake?"
  yes  = "done"
  no   = "coffee"
}

node "coffee" {
  text = "Have a {adjective} coffee."
}

node "done" {
  text = "Carry on."
}
`

func TestParse(t *testing.T) {
	tree, err := Parse([]byte(coffee), "coffee.hcl")
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
		name      string
		src       string
		malformed bool
	}{
		{name: "syntax", src: `node "a" {`},
		{name: "missing text", src: `node "a" {}`},
		{name: "unknown attribute", src: `node "a" { text = "A" maybe = "b" }`},
		{name: "unlabeled node", src: `node { text = "A" }`},
		{
			name: "single branch",
			src: `
node "a" {
  text = "A?"
  yes  = "b"
}
node "b" {
  text = "B"
}`,
			malformed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "bad.hcl")
			require.Error(t, err)
			if tt.malformed {
				assert.ErrorIs(t, err, domain.ErrMalformedTree)
			}
		})
	}
}

func TestParse_DuplicateNodeBlock(t *testing.T) {
	src := `
node "a" {
  text = "first"
}
node "a" {
  text = "second"
}
`
	_, err := Parse([]byte(src), "twice.hcl")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedTree)
	assert.Contains(t, err.Error(), `duplicate key "a"`)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakfast.hcl")
	require.NoError(t, os.WriteFile(path, []byte(coffee), 0644))

	tree, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "breakfast", tree.Name())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

func TestMarshal_RoundTrip(t *testing.T) {
	for _, name := range catalog.Names() {
		t.Run(name, func(t *testing.T) {
			original, err := catalog.Get(name)
			require.NoError(t, err)

			data := Marshal(original)
			assert.Contains(t, string(data), `name = "`+name+`"`)

			tree, err := Parse(data, name+".hcl")
			require.NoError(t, err)
			assert.Equal(t, original.Name(), tree.Name())
			assert.Equal(t, original.Nodes(), tree.Nodes())
			assert.Equal(t, original.Edges(), tree.Edges())
			assert.Equal(t, original.Root(), tree.Root())
		})
	}
}
