package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

func TestAssembleJoinsByRow(t *testing.T) {
	// Row 1 has a blank name cell and a blank position cell is at row 0.
	names := rawValues("Иванов Иван Иванович", "", "Петров Пётр")
	positions := rawValues("", "Нап.", "Защ")
	fields := Fields{
		Names:       NormalizeNames(names),
		Surnames:    NormalizeSurnames(names),
		Patronymics: NormalizePatronymics(names),
		BirthDates:  NormalizeBirthDates(rawValues("05.06.99", "01.01.2000", "12.01.2005")),
		Numbers:     NormalizeNumbers(rawValues("7", "8", "15")),
		Positions:   NormalizePositions(positions),
		RawRows: map[Field]int{
			FieldName: 3, FieldSurname: 3, FieldPatronymic: 3,
			FieldBirthDate: 3, FieldNumber: 3, FieldPosition: 3,
		},
	}

	records, err := Assemble(fields, "Ак Барс", AlignStrict)

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, models.PlayerRecord{
		Row:        0,
		Surname:    "Иванов",
		Name:       "Иван",
		Patronymic: models.Patronymic{Value: "Иванович", Present: true},
		BirthDate:  models.NewBirthDate(1999, time.June, 5),
		Team:       "Ак Барс",
		Number:     7,
		Position:   models.InvalidPosition(),
	}, records[0])

	assert.Equal(t, models.PlayerRecord{
		Row:        2,
		Surname:    "Петров",
		Name:       "Пётр",
		Patronymic: models.NoPatronymic(),
		BirthDate:  models.NewBirthDate(2005, time.January, 12),
		Team:       "Ак Барс",
		Number:     15,
		Position:   models.Position{Category: models.PositionDefender},
	}, records[1])
}

func TestAssembleAlignment(t *testing.T) {
	names := rawValues("Иванов Иван", "Петров Пётр")
	fields := Fields{
		Names:    NormalizeNames(names),
		Surnames: NormalizeSurnames(names),
		Numbers:  NormalizeNumbers(rawValues("7")),
		RawRows:  map[Field]int{FieldName: 2, FieldSurname: 2, FieldNumber: 1},
	}

	t.Run("strict", func(t *testing.T) {
		records, err := Assemble(fields, "Ак Барс", AlignStrict)
		assert.Nil(t, records)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMismatchedFieldLengths))

		var mismatch *MismatchedFieldLengthsError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, FieldNumber, mismatch.Field)
		assert.Equal(t, 2, mismatch.Want)
		assert.Equal(t, 1, mismatch.Got)
	})

	t.Run("pad", func(t *testing.T) {
		records, err := Assemble(fields, "Ак Барс", AlignPad)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, models.JerseyNumber(7), records[0].Number)
		assert.Equal(t, models.NoNumber, records[1].Number)
		assert.Equal(t, "Петров", records[1].Surname)
	})
}

func TestAssembleMissingFieldsUseSentinels(t *testing.T) {
	names := rawValues("Иванов Иван")
	fields := Fields{
		Names:   NormalizeNames(names),
		RawRows: map[Field]int{FieldName: 1},
	}

	records, err := Assemble(fields, models.TeamNotFound, AlignStrict)

	require.NoError(t, err)
	require.Len(t, records, 1)
	record := records[0]
	assert.Equal(t, "", record.Surname)
	assert.Equal(t, models.PatronymicAbsent, record.Patronymic.String())
	assert.Equal(t, "1900-01-01", record.BirthDate.String())
	assert.False(t, record.BirthDate.Known)
	assert.Equal(t, models.NoNumber, record.Number)
	assert.Equal(t, models.PositionInvalid, record.Position.Category)
	assert.Equal(t, models.TeamNotFound, record.Team)
}

func TestAssembleNoNames(t *testing.T) {
	records, err := Assemble(Fields{RawRows: map[Field]int{}}, "Ак Барс", AlignStrict)

	require.NoError(t, err)
	assert.Empty(t, records)
}
