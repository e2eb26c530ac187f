package covid

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// LoadSQLiteTables reads the deaths and vaccinations tables from a sqlite
// database holding the covid_deaths and covid_vaccinations tables, with
// the same column names as the file-based loaders.
func LoadSQLiteTables(dbPath string) (*Dataset, error) {
	fmt.Printf("Loading sqlite data: %s\n", dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("could not open sqlite database '%s': %w", dbPath, err)
	}
	defer db.Close()

	d := new(Dataset)
	if err := d.loadDeathTable(db); err != nil {
		return nil, err
	}
	if err := d.loadVaccinationTable(db); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dataset) loadDeathTable(db *sql.DB) error {
	rows, err := db.Query(`
		SELECT continent, location, date, population, new_cases, new_deaths
		FROM covid_deaths`)
	if err != nil {
		return fmt.Errorf("could not query covid_deaths: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			continent  sql.NullString
			location   string
			date       string
			population sql.NullFloat64
			newCases   sql.NullInt64
			newDeaths  sql.NullInt64
		)
		if err := rows.Scan(&continent, &location, &date, &population, &newCases, &newDeaths); err != nil {
			return fmt.Errorf("could not scan covid_deaths row: %w", err)
		}

		rec := DeathRecord{
			Continent:  continent.String,
			Location:   location,
			Date:       date,
			Population: population.Float64,
			NewCases:   newCases.Int64,
		}
		if newDeaths.Valid {
			n := newDeaths.Int64
			rec.NewDeaths = &n
		}
		d.Deaths = append(d.Deaths, rec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("could not read covid_deaths rows: %w", err)
	}
	return nil
}

func (d *Dataset) loadVaccinationTable(db *sql.DB) error {
	rows, err := db.Query(`
		SELECT location, date, people_fully_vaccinated
		FROM covid_vaccinations`)
	if err != nil {
		return fmt.Errorf("could not query covid_vaccinations: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			location        string
			date            string
			fullyVaccinated sql.NullFloat64
		)
		if err := rows.Scan(&location, &date, &fullyVaccinated); err != nil {
			return fmt.Errorf("could not scan covid_vaccinations row: %w", err)
		}

		rec := VaccinationRecord{
			Location: location,
			Date:     date,
		}
		if fullyVaccinated.Valid {
			n := fullyVaccinated.Float64
			rec.PeopleFullyVaccinated = &n
		}
		d.Vaccinations = append(d.Vaccinations, rec)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("could not read covid_vaccinations rows: %w", err)
	}
	return nil
}
