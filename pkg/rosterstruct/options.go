// Package rosterstruct extracts player rosters from federation application forms.
package rosterstruct

import (
	"io"
	"log/slog"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/parser"
)

// Alignment decides how a field covering a different number of rows than
// the name field is handled.
type Alignment = parser.AlignmentPolicy

const (
	// AlignStrict fails the document with ErrMismatchedFieldLengths.
	AlignStrict = parser.AlignStrict
	// AlignPad fills uncovered rows with the field's sentinel value.
	AlignPad = parser.AlignPad
)

// Options configures extraction behavior.
type Options struct {
	// Alignment specifies the row alignment policy (strict, pad).
	Alignment Alignment
	// Anchors are appended to the built-in catalog of known teams.
	Anchors []parser.AnchorRule
	// Exclude lists file names ExtractDir skips.
	Exclude []string
	// Jobs is the number of documents ExtractDir parses at once.
	// Values below 1 mean 1.
	Jobs int
	// Logger receives progress and debug output. If nil, output is discarded.
	Logger *slog.Logger
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Alignment: AlignStrict,
		Jobs:      1,
	}
}

// ParserConfig returns the parser configuration for these options.
func (o Options) ParserConfig() parser.Config {
	cfg := parser.DefaultConfig()
	if o.Alignment != "" {
		cfg.Alignment = o.Alignment
	}
	if len(o.Anchors) > 0 {
		cfg.Catalog = cfg.Catalog.Extend(o.Anchors...)
	}
	cfg.Logger = o.logger()
	return cfg
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) jobs() int {
	if o.Jobs < 1 {
		return 1
	}
	return o.Jobs
}

func (o Options) excluded(name string) bool {
	for _, ex := range o.Exclude {
		if ex == name {
			return true
		}
	}
	return false
}
