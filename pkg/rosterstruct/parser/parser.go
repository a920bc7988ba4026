package parser

import (
	"fmt"
	"io"
	"log/slog"
	"regexp"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
)

// Config configures a parse.
type Config struct {
	Patterns  Patterns
	Catalog   Catalog
	Alignment AlignmentPolicy
	// Logger receives debug output; nil discards it.
	Logger *slog.Logger
}

// DefaultConfig returns the configuration for federation roster forms.
func DefaultConfig() Config {
	return Config{
		Patterns:  DefaultPatterns(),
		Catalog:   DefaultCatalog(),
		Alignment: AlignStrict,
	}
}

// Result is the outcome of parsing one document.
type Result struct {
	Team       string
	TeamSource TeamSource
	Players    []models.PlayerRecord
	// Warnings lists fields that were not located or were located
	// through the row-count fallback.
	Warnings []string
}

// Parse extracts the player records of one document. The document is
// not modified, so parsing it again gives the same result.
func Parse(doc *models.Document, cfg Config) (*Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	logger = logger.With("document", doc.Name)

	columns := FlattenColumns(doc)
	text := FlattenText(doc)

	var warnings []string
	rawRows := make(map[Field]int)
	locate := func(field Field, pattern *regexp.Regexp) []RawValue {
		raw, strategy := LocateField(columns, pattern, cfg.Patterns.RowIndex)
		logger.Debug("field located", "field", field, "strategy", strategy, "rows", len(raw))
		switch strategy {
		case StrategyNone:
			warnings = append(warnings, fmt.Sprintf("field %q not found", field))
		case StrategyRowCount:
			warnings = append(warnings, fmt.Sprintf("field %q located by row count", field))
		}
		rawRows[field] = len(raw)
		return raw
	}

	fields := Fields{
		Names:       NormalizeNames(locate(FieldName, cfg.Patterns.Name)),
		Surnames:    NormalizeSurnames(locate(FieldSurname, cfg.Patterns.Surname)),
		Patronymics: NormalizePatronymics(locate(FieldPatronymic, cfg.Patterns.Patronymic)),
		BirthDates:  NormalizeBirthDates(locate(FieldBirthDate, cfg.Patterns.BirthDate)),
		Numbers:     NormalizeNumbers(locate(FieldNumber, cfg.Patterns.Number)),
		Positions:   NormalizePositions(locate(FieldPosition, cfg.Patterns.Position)),
		RawRows:     rawRows,
	}

	team, source := ResolveTeam(text, columns, cfg.Patterns.Team, cfg.Catalog)
	logger.Debug("team resolved", "team", team, "source", source)
	if source == TeamFromNothing {
		warnings = append(warnings, "team name not found")
	}

	players, err := Assemble(fields, team, cfg.Alignment)
	if err != nil {
		return nil, err
	}

	return &Result{
		Team:       team,
		TeamSource: source,
		Players:    players,
		Warnings:   warnings,
	}, nil
}
