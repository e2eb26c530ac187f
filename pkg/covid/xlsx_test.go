package covid

import (
	"path/filepath"
	"testing"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestXLSX(t *testing.T, name string, rows [][]interface{}) string {
	t.Helper()

	wb := xlsx.NewFile()
	for i, row := range rows {
		cell, err := xlsx.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow("Sheet1", cell, &row))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, wb.SaveAs(path))
	return path
}

func TestLoadExcelTables(t *testing.T) {
	deaths := writeTestXLSX(t, "deaths.xlsx", [][]interface{}{
		{"continent", "location", "date", "population", "new_cases", "new_deaths"},
		{"North America", "United States", "2021-07-01", "1000", "60", "1"},
		{"Oceania", "Australia", "2021-07-01", "500", "50", ""},
	})
	vaccinations := writeTestXLSX(t, "vaccinations.xlsx", [][]interface{}{
		{"location", "date", "people_fully_vaccinated"},
		{"United States", "2021-07-01", "300"},
	})

	d, err := LoadExcelTables(deaths, vaccinations)
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
	assert.Nil(t, d.Deaths[1].NewDeaths)

	require.Len(t, d.Vaccinations, 1)
	assert.Equal(t, f64(300), d.Vaccinations[0].PeopleFullyVaccinated)
}

func TestLoadExcelTablesMissingFile(t *testing.T) {
	vaccinations := writeTestXLSX(t, "vaccinations.xlsx", [][]interface{}{
		{"location", "date", "people_fully_vaccinated"},
	})

	_, err := LoadExcelTables(filepath.Join(t.TempDir(), "nope.xlsx"), vaccinations)
	require.Error(t, err)
}

func TestLoadExcelTablesLegacyXLSDispatch(t *testing.T) {
	vaccinations := writeTestXLSX(t, "vaccinations.xlsx", [][]interface{}{
		{"location", "date", "people_fully_vaccinated"},
	})

	// Anything without an .xlsx suffix goes to the legacy XLS reader.
	_, err := LoadExcelTables(filepath.Join(t.TempDir(), "deaths.xls"), vaccinations)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not read XLS file")
}
