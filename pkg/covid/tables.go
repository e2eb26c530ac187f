package covid

import (
	"fmt"
	"strconv"
	"strings"
)

// Expected column layouts for the file-based loaders.
//
// Deaths table       : continent, location, date, population, new_cases, new_deaths
// Vaccinations table : location, date, people_fully_vaccinated
//
// An empty continent marks a pseudo-entity row (e.g. "World"); it is kept
// on load and filtered out by the aggregation engine. Empty new_deaths
// and people_fully_vaccinated cells mean "not reported". The last column
// may be missing entirely: Excel readers trim trailing empty cells.

func (d *Dataset) appendDeathRow(row []string) error {
	if len(row) < 5 {
		return nil
	}
	if strings.EqualFold(strings.TrimSpace(row[0]), "continent") {
		// Header row.
		return nil
	}

	location := strings.TrimSpace(row[1])
	date := strings.TrimSpace(row[2])
	if location == "" || date == "" {
		return nil
	}

	population, err := parseFigure(row[3])
	if err != nil {
		return fmt.Errorf("deaths row for %s on %s: %w", location, date, err)
	}
	newCases, err := parseCount(row[4])
	if err != nil {
		return fmt.Errorf("deaths row for %s on %s: %w", location, date, err)
	}
	newDeathsCell := ""
	if len(row) > 5 {
		newDeathsCell = row[5]
	}
	newDeaths, err := parseNullableCount(newDeathsCell)
	if err != nil {
		return fmt.Errorf("deaths row for %s on %s: %w", location, date, err)
	}

	d.Deaths = append(d.Deaths, DeathRecord{
		Continent:  strings.TrimSpace(row[0]),
		Location:   location,
		Date:       date,
		Population: population,
		NewCases:   newCases,
		NewDeaths:  newDeaths,
	})
	return nil
}

func (d *Dataset) appendVaccinationRow(row []string) error {
	if len(row) < 2 {
		return nil
	}
	if strings.EqualFold(strings.TrimSpace(row[0]), "location") {
		// Header row.
		return nil
	}

	location := strings.TrimSpace(row[0])
	date := strings.TrimSpace(row[1])
	if location == "" || date == "" {
		return nil
	}

	fullyVaccinatedCell := ""
	if len(row) > 2 {
		fullyVaccinatedCell = row[2]
	}
	fullyVaccinated, err := parseNullableFigure(fullyVaccinatedCell)
	if err != nil {
		return fmt.Errorf("vaccinations row for %s on %s: %w", location, date, err)
	}

	d.Vaccinations = append(d.Vaccinations, VaccinationRecord{
		Location:              location,
		Date:                  date,
		PeopleFullyVaccinated: fullyVaccinated,
	})
	return nil
}

// parseFigure reads a numeric cell. Empty and "-" cells count as 0.
func parseFigure(v string) (float64, error) {
	v = strings.TrimSpace(v)
	if v == "" || v == "-" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse '%s' as a number", v)
	}
	return f, nil
}

// parseCount reads an integer cell. Exported sheets sometimes render
// counts as "123.0", so it goes through float parsing.
func parseCount(v string) (int64, error) {
	f, err := parseFigure(v)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

func parseNullableCount(v string) (*int64, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	n, err := parseCount(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func parseNullableFigure(v string) (*float64, error) {
	if strings.TrimSpace(v) == "" {
		return nil, nil
	}
	f, err := parseFigure(v)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
