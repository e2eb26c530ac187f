package covid

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"strings"

	xlsx "github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/anrid/xls"
)

// LoadExcelTables reads the deaths and vaccinations tables from Excel
// workbooks, column layout as documented in tables.go. Modern .xlsx and
// legacy .xls files are both accepted.
func LoadExcelTables(deathsPath, vaccinationsPath string) (*Dataset, error) {
	d := new(Dataset)
	if err := extractExcelRows(deathsPath, d.appendDeathRow); err != nil {
		return nil, err
	}
	if err := extractExcelRows(vaccinationsPath, d.appendVaccinationRow); err != nil {
		return nil, err
	}
	return d, nil
}

func extractExcelRows(path string, handler func(row []string) error) error {
	if strings.HasSuffix(path, ".xlsx") {
		return extractXLSXRows(path, handler)
	}
	return extractXLSRows(path, handler)
}

func extractXLSRows(path string, handler func(row []string) error) error {
	fmt.Printf("Loading XLS data: %s\n", path)

	rawData, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read XLS file '%s': %w", path, err)
	}
	wb, err := xls.OpenReader(bytes.NewReader(rawData), "utf-8")
	if err != nil {
		return fmt.Errorf("could not open XLS file '%s': %w", path, err)
	}

	sheet := wb.GetSheet(0)
	if sheet == nil {
		return fmt.Errorf("XLS file '%s' has no sheets", path)
	}

	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			continue
		}
		var cols []string
		for j := 0; j <= row.LastCol(); j++ {
			cols = append(cols, row.Col(j))
		}
		if err := handler(cols); err != nil {
			return err
		}
	}
	return nil
}

func extractXLSXRows(path string, handler func(row []string) error) error {
	fmt.Printf("Loading XLSX data: %s\n", path)

	wb, err := xlsx.OpenFile(path)
	if err != nil {
		return fmt.Errorf("could not open XLSX file '%s': %w", path, err)
	}

	defaultSheet := wb.GetSheetList()[0]

	rows, err := wb.GetRows(defaultSheet)
	if err != nil {
		return fmt.Errorf("could not get rows for sheet '%s': %w", defaultSheet, err)
	}

	for _, r := range rows {
		if err := handler(r); err != nil {
			return err
		}
	}
	return nil
}
