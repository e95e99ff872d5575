package services

import (
	"strconv"
	"strings"

	"jobcosting/store"
)

// NextJobNumber suggests the next job number by scanning existing numeric
// job numbers and adding one. Job numbers are free-form strings, so
// non-numeric ones are skipped; with no numeric numbers on file the
// suggestion starts at "1".
func NextJobNumber(st *store.Store) (string, error) {
	jobs, err := st.ListJobs()
	if err != nil {
		return "", err
	}

	highest := 0
	for _, j := range jobs {
		if n, err := strconv.Atoi(strings.TrimSpace(j.JobNumber)); err == nil && n > highest {
			highest = n
		}
	}
	return strconv.Itoa(highest + 1), nil
}
