package models

import "time"

// PlayerRecord is one roster row.
type PlayerRecord struct {
	// Row is the position of the player in the located name column (0-based).
	Row        int          `json:"row"`
	Surname    string       `json:"surname"`
	Name       string       `json:"name"`
	Patronymic Patronymic   `json:"patronymic"`
	BirthDate  BirthDate    `json:"date_of_birth"`
	Team       string       `json:"team"`
	Number     JerseyNumber `json:"number"`
	Position   Position     `json:"position"`
}

// Roster is the extraction result for one document.
type Roster struct {
	// File is the document file name (no path).
	File string `json:"file"`
	// Team is resolved once per document and shared by all players.
	Team    string         `json:"team"`
	Players []PlayerRecord `json:"players"`
	// Warnings lists recoverable problems met while parsing.
	Warnings []string `json:"warnings,omitempty"`
}

// Team name sentinels.
const (
	TeamNotFound = "Название команды не найдено"
	TeamUnnamed  = "Нет названия команды"
)

// BirthDateLayout is the textual form of a birth date.
const BirthDateLayout = "2006-01-02"

// unknownBirthDate is kept in BirthDate.Time for unknown dates so that
// exported rosters keep the historical 1900-01-01 marker.
var unknownBirthDate = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// BirthDate is a date of birth that may be unknown.
type BirthDate struct {
	Time  time.Time
	Known bool
}

// UnknownBirthDate returns the sentinel for a blank or malformed date.
func UnknownBirthDate() BirthDate {
	return BirthDate{Time: unknownBirthDate}
}

// NewBirthDate returns a known birth date.
func NewBirthDate(year int, month time.Month, day int) BirthDate {
	return BirthDate{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Known: true}
}

func (d BirthDate) String() string {
	return d.Time.Format(BirthDateLayout)
}

// MarshalText renders the date as YYYY-MM-DD; unknown dates render as 1900-01-01.
func (d BirthDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// JerseyNumber is a player's jersey number. NoNumber marks a blank or
// malformed cell.
type JerseyNumber int

// NoNumber is the sentinel for a missing jersey number.
const NoNumber JerseyNumber = 0

// Known reports whether the number was read from the document.
func (n JerseyNumber) Known() bool {
	return n != NoNumber
}

// PatronymicAbsent is the rendered form of an absent patronymic.
const PatronymicAbsent = "Отчество отсутствует"

// Patronymic is a player's patronymic. An absent patronymic is a valid
// value, not missing data.
type Patronymic struct {
	Value   string
	Present bool
}

// NoPatronymic returns the absent patronymic.
func NoPatronymic() Patronymic {
	return Patronymic{}
}

func (p Patronymic) String() string {
	if !p.Present {
		return PatronymicAbsent
	}
	return p.Value
}

// MarshalText renders the patronymic, or PatronymicAbsent.
func (p Patronymic) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
