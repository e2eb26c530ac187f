package covid

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "covid-stats.json")

	original := testDataset()
	original.Save(path)

	loaded, found := LoadIfExists(path)
	require.True(t, found)
	assert.Equal(t, original, loaded)

	// Nullability survives the round trip.
	assert.Nil(t, loaded.Deaths[5].NewDeaths)
	assert.Equal(t, i64(13), loaded.Deaths[0].NewDeaths)
	assert.Nil(t, loaded.Vaccinations[2].PeopleFullyVaccinated)
}

func TestLoadIfExistsMissing(t *testing.T) {
	d, found := LoadIfExists(filepath.Join(t.TempDir(), "nope.json"))
	assert.False(t, found)
	assert.Nil(t, d)
}
