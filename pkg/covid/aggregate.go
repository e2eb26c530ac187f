package covid

// GroupBy selects the dimension the engine folds raw rows into.
type GroupBy int

const (
	Worldwide GroupBy = iota
	ByContinent
	ByLocation
	ByLocationDate
)

// Aggregate is the summed representation of the raw rows for one group
// key. Fields that are not part of the key are left empty, e.g. a
// ByContinent aggregate has no Location or Date.
type Aggregate struct {
	Continent string
	Location  string
	Date      string

	Population      float64
	TotalCases      int64
	TotalDeaths     int64
	FullyVaccinated float64
}

// Aggregate folds the death rows into one Aggregate per distinct group
// key, in first-seen order. Pseudo-entity rows (empty continent) are
// always excluded; counting them alongside the countries they are made of
// would double every total.
//
// Population is assumed constant per location, so each location
// contributes its largest reported value exactly once, no matter how many
// dates the group spans. Fully-vaccinated figures are cumulative counters
// and get the same per-location treatment, except for ByLocationDate
// groups, which take the figure of the exact (location, date) join match.
func (d *Dataset) Aggregate(by GroupBy) []Aggregate {
	vaccByLocDate := make(map[string]float64, len(d.Vaccinations))
	vaccByLoc := make(map[string]float64)
	for _, v := range d.Vaccinations {
		if v.PeopleFullyVaccinated == nil {
			continue
		}
		n := *v.PeopleFullyVaccinated
		vaccByLocDate[joinKey(v.Location, v.Date)] = n
		if n > vaccByLoc[v.Location] {
			vaccByLoc[v.Location] = n
		}
	}

	type group struct {
		agg    Aggregate
		locPop map[string]float64
	}

	groups := make(map[string]*group)
	var order []string

	for _, r := range d.Deaths {
		if r.Continent == "" {
			continue
		}

		var key string
		switch by {
		case ByContinent:
			key = r.Continent
		case ByLocation:
			key = r.Location
		case ByLocationDate:
			key = joinKey(r.Location, r.Date)
		}

		g, ok := groups[key]
		if !ok {
			g = &group{locPop: make(map[string]float64)}
			switch by {
			case ByContinent:
				g.agg.Continent = r.Continent
			case ByLocation:
				g.agg.Continent = r.Continent
				g.agg.Location = r.Location
			case ByLocationDate:
				g.agg.Continent = r.Continent
				g.agg.Location = r.Location
				g.agg.Date = r.Date
			}
			groups[key] = g
			order = append(order, key)
		}

		g.agg.TotalCases += r.NewCases
		if r.NewDeaths != nil {
			g.agg.TotalDeaths += *r.NewDeaths
		}
		if r.Population > g.locPop[r.Location] {
			g.locPop[r.Location] = r.Population
		}
	}

	out := make([]Aggregate, 0, len(order))
	for _, key := range order {
		g := groups[key]

		for _, pop := range g.locPop {
			g.agg.Population += pop
		}

		switch by {
		case ByLocationDate:
			g.agg.FullyVaccinated = vaccByLocDate[joinKey(g.agg.Location, g.agg.Date)]
		case ByLocation:
			g.agg.FullyVaccinated = vaccByLoc[g.agg.Location]
		default:
			for loc := range g.locPop {
				g.agg.FullyVaccinated += vaccByLoc[loc]
			}
		}

		out = append(out, g.agg)
	}
	return out
}

func joinKey(location, date string) string {
	return location + "|" + date
}
