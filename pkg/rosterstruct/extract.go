package rosterstruct

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/parser"
	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/reader"
)

// Extract reads the roster document at path and extracts its players.
func Extract(path string, opts Options) (*models.Roster, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	doc, err := reader.Open(path)
	if err != nil {
		return nil, NewExtractionError(path, "read", err)
	}

	roster, err := ExtractDocument(doc, opts)
	if err != nil {
		return nil, NewExtractionError(path, "parse", err)
	}
	return roster, nil
}

// ExtractDocument extracts the players of an already-read document.
func ExtractDocument(doc *models.Document, opts Options) (*models.Roster, error) {
	result, err := parser.Parse(doc, opts.ParserConfig())
	if err != nil {
		return nil, err
	}

	return &models.Roster{
		File:     doc.Name,
		Team:     result.Team,
		Players:  result.Players,
		Warnings: result.Warnings,
	}, nil
}
