package rosterstruct

import (
	"errors"
	"fmt"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/parser"
	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/reader"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input file is not a docx, xlsx or csv document.
var ErrUnsupportedFormat = reader.ErrUnsupportedFormat

// ErrMismatchedFieldLengths indicates a roster column covering a different
// number of rows than the name column under AlignStrict.
var ErrMismatchedFieldLengths = parser.ErrMismatchedFieldLengths

// ExtractionError represents an error during extraction.
type ExtractionError struct {
	Path      string
	Component string // "read", "parse"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in %q (%s): %v", e.Path, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(path, component string, err error) *ExtractionError {
	return &ExtractionError{
		Path:      path,
		Component: component,
		Err:       err,
	}
}
