package parser

import (
	"strings"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// Tagged is a normalized value together with the row it came from.
type Tagged[T any] struct {
	Row   int
	Value T
}

// NormalizeSurnames takes the first token of every full-name cell.
// Blank cells produce no entry.
func NormalizeSurnames(raw []RawValue) []Tagged[string] {
	return nameToken(raw, 0)
}

// NormalizeNames takes the second token of every full-name cell.
// Blank cells produce no entry; a cell with a single token yields "".
func NormalizeNames(raw []RawValue) []Tagged[string] {
	return nameToken(raw, 1)
}

func nameToken(raw []RawValue, pos int) []Tagged[string] {
	var out []Tagged[string]
	for _, rv := range raw {
		if !rv.Present {
			continue
		}
		var token string
		if tokens := strings.Fields(rv.Text); pos < len(tokens) {
			token = trimRight(tokens[pos])
		}
		out = append(out, Tagged[string]{Row: rv.Row, Value: token})
	}
	return out
}

// NormalizePatronymics takes the third token of every full-name cell,
// with "/" read as a separator and trailing commas dropped. Every raw
// row produces an entry; short or blank cells get the absent patronymic.
func NormalizePatronymics(raw []RawValue) []Tagged[models.Patronymic] {
	out := make([]Tagged[models.Patronymic], 0, len(raw))
	for _, rv := range raw {
		out = append(out, Tagged[models.Patronymic]{Row: rv.Row, Value: parsePatronymic(rv)})
	}
	return out
}

func parsePatronymic(rv RawValue) models.Patronymic {
	if !rv.Present {
		return models.NoPatronymic()
	}
	tokens := strings.Fields(strings.ReplaceAll(rv.Text, "/", " "))
	if len(tokens) < 3 {
		return models.NoPatronymic()
	}
	value := strings.TrimRight(trimRight(tokens[2]), ",")
	if value == "" {
		return models.NoPatronymic()
	}
	return models.Patronymic{Value: value, Present: true}
}
