package rosterstruct

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/reader"
)

// lockFilePrefix starts the owner files office suites leave next to open documents.
const lockFilePrefix = "~"

// FileResult is the outcome for one document of a batch.
type FileResult struct {
	Path   string
	Roster *models.Roster
	Err    error
}

// ExtractDir extracts every supported document under dir. Lock files,
// unsupported extensions and excluded names are skipped. A failing
// document does not stop the batch; its error is kept in its result.
// Results are in walk order.
func ExtractDir(ctx context.Context, dir string, opts Options) ([]FileResult, error) {
	logger := opts.logger()

	paths, err := collectDocuments(dir, opts)
	if err != nil {
		return nil, err
	}

	results := make([]FileResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.jobs())
	for i, path := range paths {
		i, path := i, path // per-iteration copies; go.mod targets go 1.21
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			roster, err := Extract(path, opts)
			results[i] = FileResult{Path: path, Roster: roster, Err: err}
			if err != nil {
				logger.Warn("document failed", "path", path, "error", err)
				return nil
			}
			logger.Info("document parsed", "path", path, "team", roster.Team, "players", len(roster.Players))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func collectDocuments(dir string, opts Options) ([]string, error) {
	logger := opts.logger()

	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		switch {
		case strings.HasPrefix(name, lockFilePrefix):
			logger.Debug("skipping lock file", "path", path)
			return nil
		case opts.excluded(name):
			logger.Debug("skipping excluded file", "path", path)
			return nil
		}
		if _, err := reader.Detect(name); err != nil {
			logger.Debug("skipping unsupported file", "path", path)
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
