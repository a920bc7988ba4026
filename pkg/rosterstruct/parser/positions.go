package parser

import (
	"regexp"
	"strings"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// Abbreviation prefixes of the positions, checked in this order.
var positionPrefixes = []struct {
	category models.PositionCategory
	pattern  *regexp.Regexp
}{
	{models.PositionForward, regexp.MustCompile(`^(?:н|Н|H|Нп|нл|нп|цн|лн|Нап|№|А,|К,)`)},
	{models.PositionDefender, regexp.MustCompile(`^(?:з|З|Зщ|Защ)`)},
	{models.PositionGoalkeeper, regexp.MustCompile(`^(?:Вр|В|вр)`)},
}

var (
	positionNoise   = regexp.MustCompile(`\n|\(.+|\d`)
	positionCaptain = regexp.MustCompile(`\n|\(.+|\d|Капитан`)
)

// NormalizePositions classifies the position of every row. Blank cells
// produce no entry.
func NormalizePositions(raw []RawValue) []Tagged[models.Position] {
	var out []Tagged[models.Position]
	for _, rv := range raw {
		if !rv.Present {
			continue
		}
		out = append(out, Tagged[models.Position]{Row: rv.Row, Value: ParsePosition(rv.Text)})
	}
	return out
}

// ParsePosition classifies one position cell.
func ParsePosition(text string) models.Position {
	trimmed := trimLeft(text)
	for _, prefix := range positionPrefixes {
		if prefix.pattern.MatchString(trimmed) {
			return models.Position{Category: prefix.category}
		}
	}

	if positionNoise.ReplaceAllString(text, "") == "" {
		return models.InvalidPosition()
	}

	free := strings.ToLower(positionCaptain.ReplaceAllString(text, ""))
	free = trimLeft(strings.ReplaceAll(trimRight(free), ",", ""))
	if free == "" {
		return models.InvalidPosition()
	}
	return models.Position{Category: models.PositionOther, Text: free}
}
