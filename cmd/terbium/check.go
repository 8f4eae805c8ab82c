package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"terbium/internal/diag"
	"terbium/internal/diagfmt"
	"terbium/internal/driver"
	"terbium/internal/project"
	"terbium/internal/sema"
	"terbium/internal/source"
	"terbium/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.trb|directory>",
	Short: "Analyze a source file or every source file in a directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().StringSlice("allow", nil, "analyzers to enable (overrides terbium.toml)")
	checkCmd.Flags().StringSlice("deny", nil, "analyzers to disable (overrides terbium.toml)")
	checkCmd.Flags().Int("warn-level", -1, "drop warnings below this tier (-1 uses terbium.toml)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("disk-cache", false, "reuse cached results for unchanged files")
	checkCmd.Flags().Bool("basename", false, "print file names instead of full paths")
	checkCmd.Flags().Bool("no-progress", false, "disable the interactive progress view")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	opts, err := resolveSemaOptions(cmd, path, st.IsDir())
	if err != nil {
		return err
	}

	color, err := useColor(cmd)
	if err != nil {
		return err
	}
	basename, err := cmd.Flags().GetBool("basename")
	if err != nil {
		return err
	}
	pathMode := diagfmt.PathModeFull
	if basename {
		pathMode = diagfmt.PathModeBasename
	}
	prettyOpts := diagfmt.PrettyOpts{Color: color, PathMode: pathMode, ShowHelp: true}
	jsonOpts := diagfmt.JSONOpts{IncludePositions: true, PathMode: pathMode}

	var exit int
	if st.IsDir() {
		exit, err = checkDir(cmd, path, opts, format, prettyOpts, jsonOpts)
	} else {
		exit, err = checkFile(cmd, path, opts, format, prettyOpts, jsonOpts)
	}
	if err != nil {
		return err
	}
	if exit != 0 {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("") // diagnostics already printed
	}
	return nil
}

// resolveSemaOptions layers CLI flags over the nearest terbium.toml.
func resolveSemaOptions(cmd *cobra.Command, path string, isDir bool) (sema.Options, error) {
	dir := path
	if !isDir {
		dir = filepath.Dir(path)
	}

	opts := sema.DefaultOptions()
	manifestPath, err := project.Find(dir)
	switch {
	case err == nil:
		manifest, err := project.Load(manifestPath)
		if err != nil {
			return sema.Options{}, err
		}
		opts, err = manifest.AnalyzerOptions()
		if err != nil {
			return sema.Options{}, fmt.Errorf("%s: %w", manifestPath, err)
		}
	case errors.Is(err, project.ErrNoManifest):
		// defaults apply
	default:
		return sema.Options{}, err
	}

	allow, err := cmd.Flags().GetStringSlice("allow")
	if err != nil {
		return sema.Options{}, err
	}
	deny, err := cmd.Flags().GetStringSlice("deny")
	if err != nil {
		return sema.Options{}, err
	}
	if len(allow) > 0 || len(deny) > 0 {
		allowed, err := parseKindFlags(allow)
		if err != nil {
			return sema.Options{}, err
		}
		disabled, err := parseKindFlags(deny)
		if err != nil {
			return sema.Options{}, err
		}
		opts.Analyzers = sema.FromAllowedDisabled(allowed, disabled)
	}

	warnLevel, err := cmd.Flags().GetInt("warn-level")
	if err != nil {
		return sema.Options{}, err
	}
	if warnLevel >= 0 {
		if warnLevel > int(diag.MaxWarnLevel) {
			return sema.Options{}, fmt.Errorf("warn-level must be 0..%d", diag.MaxWarnLevel)
		}
		opts.MinWarnLevel = diag.Severity(warnLevel)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return sema.Options{}, err
	}
	opts.MaxDiagnostics = maxDiagnostics
	return opts, nil
}

func parseKindFlags(names []string) ([]sema.Kind, error) {
	kinds := make([]sema.Kind, 0, len(names))
	for _, name := range names {
		k, err := sema.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func checkFile(cmd *cobra.Command, path string, opts sema.Options, format string, prettyOpts diagfmt.PrettyOpts, jsonOpts diagfmt.JSONOpts) (int, error) {
	fs := source.NewFileSet()
	res, err := driver.AnalyzeFile(fs, path, opts)
	if err != nil {
		return 0, err
	}
	if res.Err != nil {
		return 0, res.Err
	}
	res.Bag.Sort()
	res.Bag.Dedup()
	if err := renderBag(res.Bag, fs, format, prettyOpts, jsonOpts); err != nil {
		return 0, err
	}
	if res.Bag.HasErrors() {
		return 1, nil
	}
	return 0, nil
}

func checkDir(cmd *cobra.Command, dir string, opts sema.Options, format string, prettyOpts diagfmt.PrettyOpts, jsonOpts diagfmt.JSONOpts) (int, error) {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return 0, err
	}

	dirOpts := driver.DirOptions{Sema: opts, Jobs: jobs}

	enableCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return 0, err
	}
	if enableCache {
		cache, err := driver.OpenDiskCache("terbium")
		if err != nil {
			return 0, fmt.Errorf("failed to open disk cache: %w", err)
		}
		dirOpts.Cache = cache
	}

	noProgress, err := cmd.Flags().GetBool("no-progress")
	if err != nil {
		return 0, err
	}
	showProgress := !noProgress && format == "pretty" && isTerminal(os.Stdout)

	fs, results, err := analyzeDirUI(cmd, dir, dirOpts, showProgress)
	if err != nil {
		return 0, err
	}

	exit := 0
	all := diag.NewBag(0)
	switch format {
	case "pretty":
		for i, r := range results {
			if i > 0 {
				fmt.Fprintln(os.Stdout)
			}
			fmt.Fprintf(os.Stdout, "== %s ==\n", displayPath(r.Path, prettyOpts.PathMode))
			if r.Err != nil {
				fmt.Fprintf(os.Stdout, "failed: %v\n", r.Err)
				exit = 1
				continue
			}
			r.Bag.Sort()
			r.Bag.Dedup()
			if err := diagfmt.Pretty(os.Stdout, r.Bag, fs, prettyOpts); err != nil {
				return 0, err
			}
			all.Merge(r.Bag)
			if r.Bag.HasErrors() {
				exit = 1
			}
		}
		fmt.Fprintf(os.Stdout, "\nchecked %d files: %s\n", len(results), summarize(all))
	case "json":
		output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for _, r := range results {
			if r.Err != nil {
				exit = 1
				continue
			}
			r.Bag.Sort()
			r.Bag.Dedup()
			output[displayPath(r.Path, jsonOpts.PathMode)] = diagfmt.BuildDiagnosticsOutput(r.Bag, fs, jsonOpts)
			if r.Bag.HasErrors() {
				exit = 1
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(output); err != nil {
			return 0, err
		}
	}
	return exit, nil
}

// analyzeDirUI runs the batch and, when requested, a progress view fed by
// completion events.
func analyzeDirUI(cmd *cobra.Command, dir string, dirOpts driver.DirOptions, showProgress bool) (*source.FileSet, []driver.Result, error) {
	if !showProgress {
		return driver.AnalyzeDir(cmd.Context(), dir, dirOpts)
	}

	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	events := make(chan ui.Event, len(files))
	dirOpts.OnResult = func(r driver.Result, done, total int) {
		events <- resultEvent(r)
	}

	var (
		fs      *source.FileSet
		results []driver.Result
		runErr  error
	)
	go func() {
		fs, results, runErr = driver.AnalyzeDir(cmd.Context(), dir, dirOpts)
		close(events)
	}()

	prog := tea.NewProgram(ui.NewProgressModel("analyzing "+dir, files, events))
	if _, err := prog.Run(); err != nil {
		return nil, nil, err
	}
	return fs, results, runErr
}

func resultEvent(r driver.Result) ui.Event {
	ev := ui.Event{File: r.Path}
	switch {
	case r.Err != nil:
		ev.Status = ui.StatusFailed
		return ev
	case r.Bag.HasErrors():
		ev.Status = ui.StatusErrors
	case r.Bag.HasWarnings():
		ev.Status = ui.StatusWarnings
	default:
		ev.Status = ui.StatusClean
	}
	for _, d := range r.Bag.Items() {
		if d.Severity.IsError() {
			ev.Errors++
		} else {
			ev.Warnings++
		}
	}
	return ev
}

func renderBag(bag *diag.Bag, fs *source.FileSet, format string, prettyOpts diagfmt.PrettyOpts, jsonOpts diagfmt.JSONOpts) error {
	switch format {
	case "json":
		return diagfmt.JSON(os.Stdout, bag, fs, jsonOpts)
	default:
		return diagfmt.Pretty(os.Stdout, bag, fs, prettyOpts)
	}
}

// summarize renders the closing tally of a directory run.
func summarize(bag *diag.Bag) string {
	errs, warns := 0, 0
	for _, d := range bag.Items() {
		if d.Severity.IsError() {
			errs++
		} else {
			warns++
		}
	}
	return fmt.Sprintf("%d errors, %d warnings", errs, warns)
}

func displayPath(path string, mode diagfmt.PathMode) string {
	if mode == diagfmt.PathModeBasename {
		return filepath.Base(path)
	}
	return path
}
