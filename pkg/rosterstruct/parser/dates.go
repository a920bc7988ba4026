package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// TwoDigitYearCutoff splits two-digit birth years between centuries:
// years above it are 19xx, the rest 20xx. It is a fixed cutoff, not
// derived from the current date.
const TwoDigitYearCutoff = 23

var nonDigits = regexp.MustCompile(`[^0-9]`)

// NormalizeBirthDates parses day, month and year from every date cell.
// Every raw row produces an entry; blank or malformed cells get the
// unknown birth date.
func NormalizeBirthDates(raw []RawValue) []Tagged[models.BirthDate] {
	out := make([]Tagged[models.BirthDate], 0, len(raw))
	for _, rv := range raw {
		date := models.UnknownBirthDate()
		if rv.Present {
			date = ParseBirthDate(rv.Text)
		}
		out = append(out, Tagged[models.BirthDate]{Row: rv.Row, Value: date})
	}
	return out
}

// ParseBirthDate reads a date written as day, month and year separated
// by any non-digit characters. Any Unicode decimal digit counts as a digit.
func ParseBirthDate(text string) models.BirthDate {
	tokens := strings.Fields(nonDigits.ReplaceAllString(asciiDigits(text), " "))
	if len(tokens) != 3 {
		return models.UnknownBirthDate()
	}

	year := tokens[2]
	if len(year) == 2 {
		if n, _ := strconv.Atoi(year); n > TwoDigitYearCutoff {
			year = "19" + year
		} else {
			year = "20" + year
		}
	}

	d, errD := strconv.Atoi(tokens[0])
	m, errM := strconv.Atoi(tokens[1])
	y, errY := strconv.Atoi(year)
	if errD != nil || errM != nil || errY != nil {
		return models.UnknownBirthDate()
	}
	if y < 1 || y > 9999 || m < 1 || m > 12 || d < 1 {
		return models.UnknownBirthDate()
	}

	date := models.NewBirthDate(y, time.Month(m), d)
	// time.Date normalizes overflow such as 31.02 into March.
	if date.Time.Day() != d || int(date.Time.Month()) != m {
		return models.UnknownBirthDate()
	}
	return date
}
