package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadLines(t *testing.T) {
	path := write(t, "names.txt", "Ann\n  Bob  \n\nCleo\n")
	names, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Bob", "Cleo"}, names)
}

func TestLoadYAMLList(t *testing.T) {
	path := write(t, "names.yaml", "- Ann\n- Bob\n- \"\"\n")
	names, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ann", "Bob"}, names)
}

func TestLoadYAMLMapping(t *testing.T) {
	path := write(t, "roster.yml", "names:\n  - Kaiji\n  - Yuuji\n")
	names, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Kaiji", "Yuuji"}, names)
}

func TestLoadBadYAML(t *testing.T) {
	path := write(t, "bad.yaml", "names: [unterminated\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNumbered(t *testing.T) {
	assert.Equal(t, []string{"Actor-001", "Actor-002", "Actor-003"}, Numbered(3))
	assert.Empty(t, Numbered(0))
}
