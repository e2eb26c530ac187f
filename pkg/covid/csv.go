package covid

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// LoadCSVTables reads the deaths and vaccinations tables from two CSV
// files, column layout as documented in tables.go.
func LoadCSVTables(deathsPath, vaccinationsPath string) (*Dataset, error) {
	d := new(Dataset)
	if err := extractCSVRows(deathsPath, d.appendDeathRow); err != nil {
		return nil, err
	}
	if err := extractCSVRows(vaccinationsPath, d.appendVaccinationRow); err != nil {
		return nil, err
	}
	return d, nil
}

func extractCSVRows(path string, handler func(row []string) error) error {
	fmt.Printf("Loading CSV data: %s\n", path)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("could not open CSV file '%s': %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("could not read CSV file '%s': %w", path, err)
		}
		if err := handler(row); err != nil {
			return err
		}
	}
	return nil
}

// ParseOWIDCSV splits the combined Our World in Data export, which
// carries the death and vaccination columns side by side, into the two
// tables. Columns are resolved by header name since the export grows new
// columns over time.
func ParseOWIDCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read OWID header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range []string{
		"continent", "location", "date", "population",
		"new_cases", "new_deaths", "people_fully_vaccinated",
	} {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("OWID export is missing column '%s'", name)
		}
	}

	d := new(Dataset)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read OWID row: %w", err)
		}

		if err := d.appendDeathRow([]string{
			row[col["continent"]],
			row[col["location"]],
			row[col["date"]],
			row[col["population"]],
			row[col["new_cases"]],
			row[col["new_deaths"]],
		}); err != nil {
			return nil, err
		}
		if err := d.appendVaccinationRow([]string{
			row[col["location"]],
			row[col["date"]],
			row[col["people_fully_vaccinated"]],
		}); err != nil {
			return nil, err
		}
	}
	return d, nil
}
