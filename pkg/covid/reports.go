package covid

import "sort"

// VaccinationReportRow is one row of the per-date vaccination report.
type VaccinationReportRow struct {
	Continent       string  `json:"continent"`
	Location        string  `json:"location"`
	Date            string  `json:"date"`
	Population      float64 `json:"population"`
	FullyVaccinated float64 `json:"people_fully_vaccinated"`
	VaccinationRate float64 `json:"vaccination_rate"`
}

// LocationReportRow is one row of the per-location infection and
// fatality report.
type LocationReportRow struct {
	Continent      string  `json:"continent"`
	Location       string  `json:"location"`
	Population     float64 `json:"population"`
	TotalCases     int64   `json:"total_cases"`
	InfectionRate  float64 `json:"infection_rate"`
	TotalDeaths    int64   `json:"total_deaths"`
	FatalityRate   float64 `json:"fatality_rate"`
	Classification string  `json:"classification"`
}

// ContinentReportRow is one row of the per-continent death report.
type ContinentReportRow struct {
	Continent     string  `json:"continent"`
	Population    float64 `json:"population"`
	TotalDeaths   int64   `json:"total_deaths"`
	MortalityRate float64 `json:"mortality_rate"`
}

// GlobalReport is the single-row worldwide summary.
type GlobalReport struct {
	TotalCases     int64    `json:"total_cases"`
	TotalDeaths    int64    `json:"total_deaths"`
	Population     float64  `json:"population"`
	FatalityRate   *float64 `json:"fatality_rate"`
	Classification string   `json:"classification"`
}

// FullyVaccinatedByLocationDate reports the cumulative fully-vaccinated
// count and rate for every (location, date) row of the deaths table.
// Dates with no matching vaccination row count as zero.
func (d *Dataset) FullyVaccinatedByLocationDate() []VaccinationReportRow {
	aggs := d.Aggregate(ByLocationDate)
	rows := make([]VaccinationReportRow, 0, len(aggs))
	for _, a := range aggs {
		row := VaccinationReportRow{
			Continent:       a.Continent,
			Location:        a.Location,
			Date:            a.Date,
			Population:      a.Population,
			FullyVaccinated: a.FullyVaccinated,
		}
		if r := VaccinationRate(a); r != nil {
			row.VaccinationRate = *r
		}
		rows = append(rows, row)
	}
	return rows
}

// InfectionFatalityByLocation reports total cases, infection rate, total
// deaths, fatality rate and risk label per location. Undefined rates are
// reported as 0, but the label still comes from the undefined rate, so a
// location with no cases is labelled None.
func (d *Dataset) InfectionFatalityByLocation() []LocationReportRow {
	aggs := d.Aggregate(ByLocation)
	rows := make([]LocationReportRow, 0, len(aggs))
	for _, a := range aggs {
		rows = append(rows, locationRow(a))
	}
	return rows
}

// TopNByInfectionRate returns the n locations with the highest infection
// rate, ties broken by input order.
func (d *Dataset) TopNByInfectionRate(n int) []LocationReportRow {
	rows := d.InfectionFatalityByLocation()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].InfectionRate > rows[j].InfectionRate
	})
	return firstN(rows, n)
}

// TopNByFatalityRate returns the n locations with the highest fatality
// rate, ties broken by input order.
func (d *Dataset) TopNByFatalityRate(n int) []LocationReportRow {
	rows := d.InfectionFatalityByLocation()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].FatalityRate > rows[j].FatalityRate
	})
	return firstN(rows, n)
}

// TopNByDeathCount returns the n locations with the most deaths.
func (d *Dataset) TopNByDeathCount(n int) []LocationReportRow {
	rows := d.InfectionFatalityByLocation()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalDeaths > rows[j].TotalDeaths
	})
	return firstN(rows, n)
}

// HavingInfectionRateAtLeast reports the locations whose infection rate
// reaches the threshold. Locations with an undefined rate (no population
// figure) never qualify.
func (d *Dataset) HavingInfectionRateAtLeast(threshold float64) []LocationReportRow {
	var rows []LocationReportRow
	for _, a := range d.Aggregate(ByLocation) {
		r := InfectionRate(a)
		if r == nil || *r < threshold {
			continue
		}
		rows = append(rows, locationRow(a))
	}
	return rows
}

// DeathsByContinent reports deaths and mortality per continent, most
// deaths first.
func (d *Dataset) DeathsByContinent() []ContinentReportRow {
	aggs := d.Aggregate(ByContinent)
	rows := make([]ContinentReportRow, 0, len(aggs))
	for _, a := range aggs {
		row := ContinentReportRow{
			Continent:   a.Continent,
			Population:  a.Population,
			TotalDeaths: a.TotalDeaths,
		}
		if a.Population > 0 {
			row.MortalityRate = round4(float64(a.TotalDeaths) / a.Population * 100)
		}
		rows = append(rows, row)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalDeaths > rows[j].TotalDeaths
	})
	return rows
}

// GlobalSummary reports the worldwide totals and fatality risk.
func (d *Dataset) GlobalSummary() GlobalReport {
	var agg Aggregate
	if aggs := d.Aggregate(Worldwide); len(aggs) == 1 {
		agg = aggs[0]
	}

	fatality := FatalityRate(agg)
	return GlobalReport{
		TotalCases:     agg.TotalCases,
		TotalDeaths:    agg.TotalDeaths,
		Population:     agg.Population,
		FatalityRate:   fatality,
		Classification: Classify(fatality),
	}
}

func locationRow(a Aggregate) LocationReportRow {
	fatality := FatalityRate(a)
	row := LocationReportRow{
		Continent:      a.Continent,
		Location:       a.Location,
		Population:     a.Population,
		TotalCases:     a.TotalCases,
		TotalDeaths:    a.TotalDeaths,
		Classification: Classify(fatality),
	}
	if r := InfectionRate(a); r != nil {
		row.InfectionRate = *r
	}
	if fatality != nil {
		row.FatalityRate = *fatality
	}
	return row
}

func firstN(rows []LocationReportRow, n int) []LocationReportRow {
	if n < 0 {
		n = 0
	}
	if n < len(rows) {
		rows = rows[:n]
	}
	return rows
}
