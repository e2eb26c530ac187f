package covid

import "math"

// FatalityRate returns deaths per hundred cases, or nil when the group
// has no cases.
func FatalityRate(a Aggregate) *float64 {
	if a.TotalCases == 0 {
		return nil
	}
	r := round4(float64(a.TotalDeaths) / float64(a.TotalCases) * 100)
	return &r
}

// InfectionRate returns cases per hundred people, or nil when the group
// has no population figure.
func InfectionRate(a Aggregate) *float64 {
	if a.Population == 0 {
		return nil
	}
	r := round4(float64(a.TotalCases) / a.Population * 100)
	return &r
}

// VaccinationRate returns fully vaccinated people per hundred people, or
// nil when the group has no population figure.
func VaccinationRate(a Aggregate) *float64 {
	if a.Population == 0 {
		return nil
	}
	r := round4(a.FullyVaccinated / a.Population * 100)
	return &r
}

// round4 rounds half away from zero to 4 decimal places, the precision
// the source reports use.
func round4(v float64) float64 {
	return math.Round(v*10_000) / 10_000
}
