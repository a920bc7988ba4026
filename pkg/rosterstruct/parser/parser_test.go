package parser

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

func newRosterDocument() *models.Document {
	return &models.Document{
		Name: "ak_bars.docx",
		Paragraphs: []models.Paragraph{
			{Runs: []string{"Именная заявка"}},
			{Runs: []string{"КОМАНДА Ак Барс", " г. Казань"}},
		},
		Tables: []models.Table{models.NewTable([][]string{
			{"№ п/п", "Фамилия, имя, отчество", "Дата рождения", "Игровой номер", "Позиция"},
			{"1", "Иванов Иван Иванович", "05.06.99", "№ 7", "Нап."},
			{"2", "Петров Пётр", "12.01.2005", "15", "Защ"},
			{"3", "Сидоров Семён Семёнович,", "1.1.23", "", "вр"},
			{"4", "", "", "", ""},
		})},
	}
}

func TestParse(t *testing.T) {
	result, err := Parse(newRosterDocument(), DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, "Ак Барс", result.Team)
	assert.Equal(t, TeamFromAnchor, result.TeamSource)
	assert.Empty(t, result.Warnings)

	require.Len(t, result.Players, 3)
	assert.Equal(t, []models.PlayerRecord{
		{
			Row:        0,
			Surname:    "Иванов",
			Name:       "Иван",
			Patronymic: models.Patronymic{Value: "Иванович", Present: true},
			BirthDate:  models.NewBirthDate(1999, time.June, 5),
			Team:       "Ак Барс",
			Number:     7,
			Position:   models.Position{Category: models.PositionForward},
		},
		{
			Row:        1,
			Surname:    "Петров",
			Name:       "Пётр",
			Patronymic: models.NoPatronymic(),
			BirthDate:  models.NewBirthDate(2005, time.January, 12),
			Team:       "Ак Барс",
			Number:     15,
			Position:   models.Position{Category: models.PositionDefender},
		},
		{
			Row:        2,
			Surname:    "Сидоров",
			Name:       "Семён",
			Patronymic: models.Patronymic{Value: "Семёнович", Present: true},
			BirthDate:  models.NewBirthDate(2023, time.January, 1),
			Team:       "Ак Барс",
			Number:     models.NoNumber,
			Position:   models.Position{Category: models.PositionGoalkeeper},
		},
	}, result.Players)
}

func TestParseIsIdempotent(t *testing.T) {
	doc := newRosterDocument()

	first, err := Parse(doc, DefaultConfig())
	require.NoError(t, err)
	second, err := Parse(doc, DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, newRosterDocument(), doc)
}

func TestParseWarnings(t *testing.T) {
	doc := &models.Document{
		Name: "partial.docx",
		Tables: []models.Table{models.NewTable([][]string{
			{"Заявка", "Заявка"},
			{"п/п", "Фамилия Имя"},
			{"1", "Иванов Иван"},
			{"2", "Петров Пётр"},
		})},
	}

	var logs bytes.Buffer
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	result, err := Parse(doc, cfg)

	require.NoError(t, err)
	require.Len(t, result.Players, 2)
	assert.Equal(t, "Петров", result.Players[1].Surname)
	assert.Equal(t, models.TeamNotFound, result.Team)
	assert.Contains(t, result.Warnings, `field "name" located by row count`)
	assert.Contains(t, result.Warnings, `field "position" not found`)
	assert.Contains(t, result.Warnings, "team name not found")
	assert.Contains(t, logs.String(), "field located")
	assert.Contains(t, logs.String(), "document=partial.docx")
}

func TestParseAlignment(t *testing.T) {
	doc := &models.Document{
		Name: "split.docx",
		Tables: []models.Table{
			models.NewTable([][]string{{"Фамилия, имя", "Игровой номер"}, {"Иванов Иван", "7"}}),
			models.NewTable([][]string{{"Фамилия, имя"}, {"Петров Пётр"}}),
		},
	}

	_, err := Parse(doc, DefaultConfig())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMismatchedFieldLengths))

	cfg := DefaultConfig()
	cfg.Alignment = AlignPad
	result, err := Parse(doc, cfg)
	require.NoError(t, err)
	require.Len(t, result.Players, 2)
	assert.Equal(t, models.JerseyNumber(7), result.Players[0].Number)
	assert.Equal(t, models.NoNumber, result.Players[1].Number)
}
