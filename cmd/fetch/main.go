package main

import (
	"bytes"
	"log"
	"os"

	"github.com/RobertaBRC/covid-stats/pkg/covid"
	"github.com/joho/godotenv"
)

const covidStatsDatabase = "/tmp/covid-stats.json"
const owidDataURL = "https://covid.ourworldindata.org/data/owid-covid-data.csv"

func main() {
	_ = godotenv.Load()

	d, found := covid.LoadIfExists(covidStatsDatabase)
	if !found {
		url := owidDataURL
		if v := os.Getenv("COVID_STATS_DATA_URL"); v != "" {
			url = v
		}

		var err error
		d, err = covid.ParseOWIDCSV(bytes.NewReader(covid.Download(url)))
		if err != nil {
			log.Panic(err)
		}

		d.Save(covidStatsDatabase)
	}

	d.Info()
}
