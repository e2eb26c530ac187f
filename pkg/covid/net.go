package covid

import (
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
)

// Download fetches a source dataset in one shot.
func Download(url string) []byte {
	fmt.Printf("Download: '%s'\n", url)

	resp, err := http.Get(url)
	if err != nil {
		log.Panic(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Panicf("Download of '%s' failed: %s", url, resp.Status)
	}

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		log.Panic(err)
	}

	return data
}
