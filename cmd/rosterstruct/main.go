// Package main provides the CLI entry point for rosterstruct-go.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct"
	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/models"
	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/output"
	"github.com/ukaji3/rosterstruct-go/pkg/rosterstruct/parser"
)

// Environment variables that override flag defaults.
const (
	envFormat  = "ROSTERSTRUCT_FORMAT"
	envExclude = "ROSTERSTRUCT_EXCLUDE"
	envJobs    = "ROSTERSTRUCT_JOBS"
	envAnchors = "ROSTERSTRUCT_ANCHORS"
)

var (
	outputPath  string
	format      string
	pretty      bool
	alignment   string
	anchorsPath string
	exclude     []string
	jobs        int
	rostersDir  string
	envFile     string
	verbose     bool
	logJSON     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "rosterstruct [roster.docx|directory]",
		Short: "Extract player rosters from federation application forms",
		Long: `rosterstruct-go extracts player records (name, date of birth, team,
jersey number, position) from roster documents (.docx, .xlsx, .csv).
Given a directory, every supported document below it is processed.`,
		Args:              cobra.ExactArgs(1),
		PersistentPreRunE: loadEnv,
		RunE:              run,
		SilenceUsage:      true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&format, "format", "json", "Output format: json, csv, xlsx")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&alignment, "alignment", "strict", "Row alignment policy: strict, pad")
	rootCmd.Flags().StringVar(&anchorsPath, "anchors", "", "YAML file with extra team anchor rules")
	rootCmd.Flags().StringSliceVar(&exclude, "exclude", nil, "File names to skip in directory mode")
	rootCmd.Flags().IntVar(&jobs, "jobs", 1, "Documents parsed at once in directory mode")
	rootCmd.Flags().StringVar(&rostersDir, "rosters-dir", "", "Directory for per-document JSON files")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "Dotenv file with ROSTERSTRUCT_* defaults")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")
	rootCmd.Flags().BoolVar(&logJSON, "log-json", false, "Log as JSON")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// loadEnv applies ROSTERSTRUCT_* variables, optionally from a dotenv
// file, to flags the user did not set.
func loadEnv(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	flags := cmd.Flags()
	if v := os.Getenv(envFormat); v != "" && !flags.Changed("format") {
		format = v
	}
	if v := os.Getenv(envExclude); v != "" && !flags.Changed("exclude") {
		exclude = strings.Split(v, ",")
	}
	if v := os.Getenv(envJobs); v != "" && !flags.Changed("jobs") {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envJobs, err)
		}
		jobs = n
	}
	if v := os.Getenv(envAnchors); v != "" && !flags.Changed("anchors") {
		anchorsPath = v
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input exists
	info, err := os.Stat(inputPath)
	if os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}
	if err != nil {
		return err
	}

	outFormat, err := output.ParseFormat(format)
	if err != nil {
		return err
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	var rosters []*models.Roster
	var sources []string
	root := filepath.Dir(inputPath)
	failed := 0
	if info.IsDir() {
		root = inputPath
		results, err := rosterstruct.ExtractDir(cmd.Context(), inputPath, opts)
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		for _, res := range results {
			if res.Err != nil {
				failed++
				continue
			}
			rosters = append(rosters, res.Roster)
			sources = append(sources, res.Path)
		}
	} else {
		roster, err := rosterstruct.Extract(inputPath, opts)
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		rosters = append(rosters, roster)
		sources = append(sources, inputPath)
	}

	if err := writeOutput(outFormat, rosters); err != nil {
		return err
	}

	// Write per-document files
	if rostersDir != "" {
		if err := writeRosterFiles(rosters, sources, root, rostersDir); err != nil {
			return fmt.Errorf("failed to write roster files: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, failed+len(rosters))
	}
	return nil
}

func buildOptions() (rosterstruct.Options, error) {
	opts := rosterstruct.DefaultOptions()
	opts.Logger = newLogger(os.Stderr)
	opts.Exclude = exclude
	opts.Jobs = jobs

	switch rosterstruct.Alignment(alignment) {
	case rosterstruct.AlignStrict, rosterstruct.AlignPad:
		opts.Alignment = rosterstruct.Alignment(alignment)
	default:
		return opts, fmt.Errorf("invalid alignment: %s (must be strict or pad)", alignment)
	}

	if anchorsPath != "" {
		f, err := os.Open(anchorsPath)
		if err != nil {
			return opts, fmt.Errorf("failed to open anchors: %w", err)
		}
		defer f.Close()
		rules, err := parser.LoadAnchorRules(f)
		if err != nil {
			return opts, fmt.Errorf("failed to load anchors: %w", err)
		}
		opts.Anchors = rules
	}

	return opts, nil
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	if logJSON {
		return slog.New(slog.NewJSONHandler(w, handlerOpts))
	}
	return slog.New(slog.NewTextHandler(w, handlerOpts))
}

func writeOutput(outFormat output.Format, rosters []*models.Roster) error {
	if outputPath == "" {
		if rostersDir != "" {
			return nil
		}
		return output.Write(os.Stdout, outFormat, rosters, pretty)
	}

	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := output.Write(f, outFormat, rosters, pretty); err != nil {
		f.Close()
		return fmt.Errorf("serialization failed: %w", err)
	}
	return f.Close()
}

// writeRosterFiles writes one JSON file per roster. The file mirrors the
// source path below root and keeps its extension, so a.docx and a.csv
// or two same-named documents in different folders never share a file.
func writeRosterFiles(rosters []*models.Roster, sources []string, root, dir string) error {
	for i, roster := range rosters {
		jsonData, err := output.RosterToJSON(roster, pretty)
		if err != nil {
			return err
		}

		filename, err := rosterFileName(root, sources[i], dir)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}

// rosterFileName returns the JSON file for the document at path.
func rosterFileName(root, path, dir string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(path)
	}
	return filepath.Join(dir, rel+".json"), nil
}
