// Package parser locates roster fields in document tables and normalizes
// their cells into typed player records.
package parser

import "regexp"

// Header patterns for the roster fields. Federation forms spell headers
// in any letter case, so all patterns are case-insensitive.
var (
	NamePattern       = regexp.MustCompile(`(?i)имя`)
	SurnamePattern    = regexp.MustCompile(`(?i)фамилия`)
	PatronymicPattern = regexp.MustCompile(`(?i)от?чество`)
	BirthDatePattern  = regexp.MustCompile(`(?i)дата ро.+`)
	TeamPattern       = regexp.MustCompile(`(?i)команда`)
	NumberPattern     = regexp.MustCompile(`(?i)игровой`)
	PositionPattern   = regexp.MustCompile(`(?i)позиция`)
	RowIndexPattern   = regexp.MustCompile(`п/п`)
)

// Patterns maps each roster field to its header pattern.
type Patterns struct {
	Name       *regexp.Regexp
	Surname    *regexp.Regexp
	Patronymic *regexp.Regexp
	BirthDate  *regexp.Regexp
	Team       *regexp.Regexp
	Number     *regexp.Regexp
	Position   *regexp.Regexp
	RowIndex   *regexp.Regexp
}

// DefaultPatterns returns the header patterns used on federation forms.
func DefaultPatterns() Patterns {
	return Patterns{
		Name:       NamePattern,
		Surname:    SurnamePattern,
		Patronymic: PatronymicPattern,
		BirthDate:  BirthDatePattern,
		Team:       TeamPattern,
		Number:     NumberPattern,
		Position:   PositionPattern,
		RowIndex:   RowIndexPattern,
	}
}
