package covid

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSQLiteDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "covid.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	stmts := []string{
		`CREATE TABLE covid_deaths (
			continent TEXT,
			location TEXT NOT NULL,
			date TEXT NOT NULL,
			population REAL,
			new_cases INTEGER,
			new_deaths INTEGER
		)`,
		`CREATE TABLE covid_vaccinations (
			location TEXT NOT NULL,
			date TEXT NOT NULL,
			people_fully_vaccinated REAL
		)`,
	}
	for _, stmt := range stmts {
		_, err = db.Exec(stmt)
		require.NoError(t, err)
	}

	_, err = db.Exec(
		`INSERT INTO covid_deaths (continent, location, date, population, new_cases, new_deaths)
		 VALUES (?, ?, ?, ?, ?, ?), (?, ?, ?, ?, ?, ?)`,
		"North America", "United States", "2021-07-01", 1000.0, 60, 1,
		nil, "World", "2021-07-01", 7_800_000_000.0, 350, nil,
	)
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO covid_vaccinations (location, date, people_fully_vaccinated)
		 VALUES (?, ?, ?), (?, ?, ?)`,
		"United States", "2021-07-01", 300.0,
		"Australia", "2021-07-01", nil,
	)
	require.NoError(t, err)

	return path
}

func TestLoadSQLiteTables(t *testing.T) {
	d, err := LoadSQLiteTables(createTestSQLiteDB(t))
	require.NoError(t, err)

	require.Len(t, d.Deaths, 2)
	assert.Equal(t, DeathRecord{
		Continent:  "North America",
		Location:   "United States",
		Date:       "2021-07-01",
		Population: 1000,
		NewCases:   60,
		NewDeaths:  i64(1),
	}, d.Deaths[0])

	// NULL continent and new_deaths come through as empty and nil.
	world := d.Deaths[1]
	assert.Empty(t, world.Continent)
	assert.Nil(t, world.NewDeaths)

	require.Len(t, d.Vaccinations, 2)
	assert.Equal(t, f64(300), d.Vaccinations[0].PeopleFullyVaccinated)
	assert.Nil(t, d.Vaccinations[1].PeopleFullyVaccinated)
}

func TestLoadSQLiteTablesMissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE unrelated (id INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = LoadSQLiteTables(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "covid_deaths")
}
