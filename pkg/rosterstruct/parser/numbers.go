package parser

import (
	"strconv"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// maxNumberDigits is the number of leading digits kept from a jersey cell.
const maxNumberDigits = 2

// NormalizeNumbers reads the jersey number of every row. Every raw row
// produces an entry; blank or digitless cells get NoNumber.
func NormalizeNumbers(raw []RawValue) []Tagged[models.JerseyNumber] {
	out := make([]Tagged[models.JerseyNumber], 0, len(raw))
	for _, rv := range raw {
		number := models.NoNumber
		if rv.Present {
			number = ParseNumber(rv.Text)
		}
		out = append(out, Tagged[models.JerseyNumber]{Row: rv.Row, Value: number})
	}
	return out
}

// ParseNumber keeps the first two digits of text.
func ParseNumber(text string) models.JerseyNumber {
	digits := nonDigits.ReplaceAllString(asciiDigits(text), "")
	if len(digits) > maxNumberDigits {
		digits = digits[:maxNumberDigits]
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return models.NoNumber
	}
	return models.JerseyNumber(n)
}
