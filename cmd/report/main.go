package main

import (
	"log"

	"github.com/RobertaBRC/covid-stats/pkg/covid"
	"github.com/davecgh/go-spew/spew"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const covidStatsDatabase = "/tmp/covid-stats.json"

func main() {
	d, found := covid.LoadIfExists(covidStatsDatabase)
	if !found {
		log.Panic("No database found, run the fetch command in `cmd/fetch` first.")
	}

	d.Info()

	global := d.GlobalSummary()
	spew.Dump(global)

	// New locale number printer.
	p := message.NewPrinter(language.English)

	p.Printf("\n\nWorldwide: %d cases, %d deaths [%s]\n", global.TotalCases, global.TotalDeaths, global.Classification)
	if global.FatalityRate != nil {
		p.Printf("Worldwide fatality rate: %.4f%%\n", *global.FatalityRate)
	}

	p.Println("\nDeaths by Continent:")
	for i, r := range d.DeathsByContinent() {
		p.Printf("%02d. %-15s  --  %-5.04f%%  %9d / %14.f\n",
			i+1, r.Continent,
			r.MortalityRate, r.TotalDeaths, r.Population,
		)
	}

	p.Println("\nTop 10 Locations by Infection Rate:")
	for i, r := range d.TopNByInfectionRate(10) {
		p.Printf("%02d. %-25s  --  %-5.04f%%  %9d / %14.f\n",
			i+1, r.Location,
			r.InfectionRate, r.TotalCases, r.Population,
		)
	}

	p.Println("\nTop 10 Locations by Fatality Rate:")
	for i, r := range d.TopNByFatalityRate(10) {
		p.Printf("%02d. %-25s [%-6s]  --  %-5.04f%%  %8d / %10d\n",
			i+1, r.Location, r.Classification,
			r.FatalityRate, r.TotalDeaths, r.TotalCases,
		)
	}

	p.Println("\nTop 10 Locations by Death Count:")
	for i, r := range d.TopNByDeathCount(10) {
		p.Printf("%02d. %-25s  --  %9d deaths\n", i+1, r.Location, r.TotalDeaths)
	}

	p.Println("\nLocations With an Infection Rate of 10% or More:")
	for i, r := range d.HavingInfectionRateAtLeast(10) {
		p.Printf("%02d. %-25s  --  %-5.04f%%\n", i+1, r.Location, r.InfectionRate)
	}

	// Latest vaccination picture for a few locations of interest.
	focus := d.FilterByLocation("United States", "Australia", "Brazil")
	rows := focus.FullyVaccinatedByLocationDate()
	if len(rows) > 3 {
		rows = rows[len(rows)-3:]
	}
	covid.Dump(rows)
}
