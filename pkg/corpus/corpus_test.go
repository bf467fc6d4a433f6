package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
documents:
  fruits: [apple, banana, orange]
  pasta: [tagliatelle, rotini]
queries:
  - [apple]
  - [apple, banana]
`), 0644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Len(t, c.Documents, 2)
	assert.Equal(t, []string{"apple", "banana", "orange"}, c.Documents["fruits"])
	assert.Len(t, c.Queries, 2)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadEmptyDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("queries:\n  - [apple]\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "no documents")
}
