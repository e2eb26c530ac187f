package covid

// DeathRecord is one reported row of the deaths table: new case and death
// counts for a location on a single date. Rows with an empty Continent are
// aggregate pseudo-entities (World, European Union, income groups) that the
// source publishes alongside real countries.
type DeathRecord struct {
	Continent  string
	Location   string
	Date       string // ISO form, e.g. "2021-07-01"
	Population float64
	NewCases   int64
	NewDeaths  *int64 // nil when not reported
}

// VaccinationRecord is one reported row of the vaccinations table, joined
// to DeathRecord on (Location, Date).
type VaccinationRecord struct {
	Location              string
	Date                  string
	PeopleFullyVaccinated *float64 // cumulative, nil when not reported
}

// Dataset holds the two source tables. It is immutable once loaded and
// every report recomputes from it on demand.
type Dataset struct {
	Deaths       []DeathRecord
	Vaccinations []VaccinationRecord
}

// FilterByLocation returns a new Dataset restricted to the given location
// names. A name absent from the data matches nothing, so unknown names
// yield empty reports rather than an error.
func (d *Dataset) FilterByLocation(names ...string) *Dataset {
	keep := make(map[string]bool, len(names))
	for _, n := range names {
		keep[n] = true
	}

	out := new(Dataset)
	for _, r := range d.Deaths {
		if keep[r.Location] {
			out.Deaths = append(out.Deaths, r)
		}
	}
	for _, r := range d.Vaccinations {
		if keep[r.Location] {
			out.Vaccinations = append(out.Vaccinations, r)
		}
	}
	return out
}
