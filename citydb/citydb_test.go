package citydb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "citydb.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const sampleFixture = `
nodes:
  - osm_id: 1001
    node_id: 1
    name: Independence Square
  - osm_id: 1002
    node_id: 2
    name: Golden Gate
ways:
  - way_id: 55
    name: Khreshchatyk Street
`

func TestLoadAndResolve(t *testing.T) {
	path := writeFixture(t, sampleFixture)
	db, err := Load(path)
	require.NoError(t, err)

	internal, err := db.InternalByOSM(1001)
	require.NoError(t, err)
	assert.Equal(t, int64(1), internal)

	osmID, err := db.OSMByInternal(2)
	require.NoError(t, err)
	assert.Equal(t, int64(1002), osmID)

	name, err := db.NodeName(1001)
	require.NoError(t, err)
	assert.Equal(t, "Independence Square", name)

	wayName, err := db.WayName(55)
	require.NoError(t, err)
	assert.Equal(t, "Khreshchatyk Street", wayName)
}

func TestLookupMissingReturnsErrNotFound(t *testing.T) {
	path := writeFixture(t, sampleFixture)
	db, err := Load(path)
	require.NoError(t, err)

	_, err = db.InternalByOSM(9999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = db.WayName(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
