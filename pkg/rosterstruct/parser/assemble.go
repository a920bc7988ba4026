package parser

import (
	"errors"
	"fmt"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// Field identifies a roster column.
type Field string

const (
	FieldName       Field = "name"
	FieldSurname    Field = "surname"
	FieldPatronymic Field = "patronymic"
	FieldBirthDate  Field = "date_of_birth"
	FieldNumber     Field = "number"
	FieldPosition   Field = "position"
)

// rowFields are the fields joined to the name field by row.
var rowFields = []Field{FieldSurname, FieldPatronymic, FieldBirthDate, FieldNumber, FieldPosition}

// AlignmentPolicy decides what happens when a located field covers a
// different number of rows than the name field.
type AlignmentPolicy string

const (
	// AlignStrict fails the document with MismatchedFieldLengthsError.
	AlignStrict AlignmentPolicy = "strict"
	// AlignPad fills rows the field does not cover with its sentinel.
	AlignPad AlignmentPolicy = "pad"
)

// ErrMismatchedFieldLengths is matched by MismatchedFieldLengthsError.
var ErrMismatchedFieldLengths = errors.New("mismatched field lengths")

// MismatchedFieldLengthsError reports a field whose raw row count
// differs from the name field.
type MismatchedFieldLengthsError struct {
	Field Field
	Want  int
	Got   int
}

func (e *MismatchedFieldLengthsError) Error() string {
	return fmt.Sprintf("field %q has %d rows, name field has %d", e.Field, e.Got, e.Want)
}

func (e *MismatchedFieldLengthsError) Is(target error) bool {
	return target == ErrMismatchedFieldLengths
}

// Fields holds the normalized values of every roster field together
// with the raw row count each field was located with.
type Fields struct {
	Names       []Tagged[string]
	Surnames    []Tagged[string]
	Patronymics []Tagged[models.Patronymic]
	BirthDates  []Tagged[models.BirthDate]
	Numbers     []Tagged[models.JerseyNumber]
	Positions   []Tagged[models.Position]
	// RawRows is the number of raw cells located per field.
	RawRows map[Field]int
}

// Assemble builds one record per entry of the name list. The other
// fields are joined by source row, never by list position. Fields that
// were not located at all are filled with their sentinels; a located
// field whose row count differs from the name field is handled by policy.
func Assemble(fields Fields, team string, policy AlignmentPolicy) ([]models.PlayerRecord, error) {
	if policy != AlignPad {
		want := fields.RawRows[FieldName]
		for _, field := range rowFields {
			got := fields.RawRows[field]
			if got != 0 && got != want {
				return nil, &MismatchedFieldLengthsError{Field: field, Want: want, Got: got}
			}
		}
	}

	surnames := byRow(fields.Surnames)
	patronymics := byRow(fields.Patronymics)
	birthDates := byRow(fields.BirthDates)
	numbers := byRow(fields.Numbers)
	positions := byRow(fields.Positions)

	records := make([]models.PlayerRecord, 0, len(fields.Names))
	for _, name := range fields.Names {
		record := models.PlayerRecord{
			Row:        name.Row,
			Name:       name.Value,
			Surname:    surnames[name.Row],
			Patronymic: models.NoPatronymic(),
			BirthDate:  models.UnknownBirthDate(),
			Team:       team,
			Number:     models.NoNumber,
			Position:   models.InvalidPosition(),
		}
		if v, ok := patronymics[name.Row]; ok {
			record.Patronymic = v
		}
		if v, ok := birthDates[name.Row]; ok {
			record.BirthDate = v
		}
		if v, ok := numbers[name.Row]; ok {
			record.Number = v
		}
		if v, ok := positions[name.Row]; ok {
			record.Position = v
		}
		records = append(records, record)
	}

	return records, nil
}

func byRow[T any](list []Tagged[T]) map[int]T {
	m := make(map[int]T, len(list))
	for _, item := range list {
		m[item.Row] = item.Value
	}
	return m
}
