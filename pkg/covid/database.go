package covid

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/dustin/go-humanize"
)

// LoadIfExists loads a previously saved snapshot of the two source
// tables, if there is one.
func LoadIfExists(path string) (d *Dataset, found bool) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false
		}
		log.Panic(err)
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		log.Panic(err)
	}

	d = new(Dataset)
	err = json.Unmarshal(data, d)
	if err != nil {
		log.Panic(err)
	}

	return d, true
}

// Save writes a snapshot of both tables so later report runs do not need
// to re-download anything.
func (d *Dataset) Save(path string) {
	js, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		log.Panic(err)
	}
	err = ioutil.WriteFile(path, js, 0777)
	if err != nil {
		log.Panic(err)
	}
}

// Info prints a short summary of the loaded tables.
func (d *Dataset) Info() {
	locations := make(map[string]bool)
	firstDate := ""
	lastDate := ""

	for _, r := range d.Deaths {
		locations[r.Location] = true
		if firstDate == "" || r.Date < firstDate {
			firstDate = r.Date
		}
		if lastDate == "" || r.Date > lastDate {
			lastDate = r.Date
		}
	}

	fmt.Printf(`
	Dates            : %s - %s
	Locations        : %s
	Death Rows       : %s
	Vaccination Rows : %s
	`,
		firstDate, lastDate,
		humanize.Comma(int64(len(locations))),
		humanize.Comma(int64(len(d.Deaths))),
		humanize.Comma(int64(len(d.Vaccinations))),
	)
	fmt.Println("")
}

func Dump(o interface{}) {
	js, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		log.Panic(err)
	}
	println(string(js))
}
