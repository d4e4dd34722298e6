package dto

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ExperienceYears accepts either a JSON number or a bucket label from the
// signup form ("1-2 years", "10+ years"): the first run of digits wins, so
// "1-2 years" resolves to 1. Negative values survive unmarshalling and are
// rejected by the gte=0 validation rule instead, so the client gets a field
// error rather than a generic bad-body response.
type ExperienceYears int

var firstNumberRegexp = regexp.MustCompile(`-?\d+`)

var errNoExperienceNumber = errors.New("yearsOfExperience must be a number or contain one")

func (e *ExperienceYears) UnmarshalJSON(data []byte) error {
	// Plain JSON number
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*e = ExperienceYears(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errNoExperienceNumber
	}

	match := firstNumberRegexp.FindString(strings.TrimSpace(s))
	if match == "" {
		return errNoExperienceNumber
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return errNoExperienceNumber
	}
	*e = ExperienceYears(n)
	return nil
}

func (e ExperienceYears) Int() int {
	return int(e)
}
