package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"esfmt/internal/config"
	"esfmt/internal/driver"
	"esfmt/internal/format"
	"esfmt/internal/ui"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] <path> [path...]",
	Short: "Format module declarations in parsed source files",
	Long: `Format reprints import/export declarations from *.ast.json parser dumps
and splices them back into the paired source files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("check", false, "check if files are properly formatted")
	fmtCmd.Flags().String("format", "text", "output format (text|json)")
	fmtCmd.Flags().Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	fmtCmd.Flags().Bool("no-cache", false, "bypass the result cache")
	fmtCmd.Flags().Bool("progress", false, "show a progress display for large batches")
	fmtCmd.Flags().String("config", "", "path to esfmt.toml (default: discovered upward from cwd)")

	fmtCmd.Flags().Int("print-width", 0, "target line width (overrides config)")
	fmtCmd.Flags().String("trailing-comma", "", "trailing comma policy: none|es5|all (overrides config)")
	fmtCmd.Flags().Bool("no-semi", false, "omit trailing semicolons (overrides config)")
	fmtCmd.Flags().Bool("no-bracket-spacing", false, "omit spaces inside specifier braces (overrides config)")
}

func runFmt(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	check, _ := cmd.Flags().GetBool("check")
	outputFormat, _ := cmd.Flags().GetString("format")
	writeToStdout, _ := cmd.Flags().GetBool("stdout")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	showProgress, _ := cmd.Flags().GetBool("progress")

	if writeToStdout && check {
		return fmt.Errorf("fmt: --stdout cannot be used with --check")
	}
	if writeToStdout && outputFormat != "text" {
		return fmt.Errorf("fmt: --stdout is only supported with text output")
	}

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	jobs, _ := cmd.Root().PersistentFlags().GetInt("jobs")

	formatOpts := driver.FormatOptions{
		Check:   check,
		Stdout:  writeToStdout,
		Jobs:    jobs,
		Options: opts,
	}
	if !noCache {
		// A missing cache degrades to formatting everything.
		if cache, err := driver.OpenDiskCache("esfmt"); err == nil {
			formatOpts.Cache = cache
		}
	}

	files, err := driver.CollectInputs(args)
	if err != nil {
		return err
	}

	var results []driver.FormatResult
	if showProgress && !writeToStdout && isTerminal(os.Stdout) {
		results, err = runWithProgress(cmd, files, formatOpts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), files, formatOpts)
	}
	if err != nil {
		return err
	}

	var hasErrors, hasChanges bool
	switch outputFormat {
	case "text":
		if writeToStdout {
			renderFmtStdout(results, &hasErrors)
			if hasErrors {
				return fmt.Errorf("fmt: failed to format some files")
			}
			return nil
		}
		renderFmtText(results, check, quiet, &hasErrors, &hasChanges)
	case "json":
		if err := renderFmtJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
		for _, res := range results {
			hasErrors = hasErrors || res.Err != nil
			hasChanges = hasChanges || res.Changed
		}
	default:
		return fmt.Errorf("fmt: unsupported output format %q", outputFormat)
	}

	if hasErrors {
		return fmt.Errorf("fmt: failed to format some files")
	}
	if check && hasChanges {
		return fmt.Errorf("fmt: formatting changes required")
	}
	return nil
}

func resolveOptions(cmd *cobra.Command) (format.Options, error) {
	opts := format.DefaultOptions()

	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		if cwd, err := os.Getwd(); err == nil {
			if found, err := config.Discover(cwd); err == nil {
				configPath = found
			} else if !errors.Is(err, config.ErrNotFound) {
				return opts, err
			}
		}
	}
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return opts, err
		}
		opts = loaded
	}

	if w, _ := cmd.Flags().GetInt("print-width"); w > 0 {
		opts.PrintWidth = w
	}
	if tc, _ := cmd.Flags().GetString("trailing-comma"); tc != "" {
		parsed, err := format.ParseTrailingComma(tc)
		if err != nil {
			return opts, err
		}
		opts.TrailingComma = parsed
	}
	if noSemi, _ := cmd.Flags().GetBool("no-semi"); noSemi {
		opts.Semi = false
	}
	if noBS, _ := cmd.Flags().GetBool("no-bracket-spacing"); noBS {
		opts.BracketSpacing = false
	}
	return opts, nil
}

func runWithProgress(cmd *cobra.Command, files []string, opts driver.FormatOptions) ([]driver.FormatResult, error) {
	events := make(chan driver.Event, 256)
	opts.Events = events

	var results []driver.FormatResult
	var formatErr error
	done := make(chan struct{})
	go func() {
		defer close(events)
		defer close(done)
		results, formatErr = driver.FormatPaths(cmd.Context(), files, opts)
	}()

	prog := tea.NewProgram(ui.NewProgressModel("esfmt", files, events))
	if _, err := prog.Run(); err != nil {
		<-done
		return results, err
	}
	<-done
	return results, formatErr
}

func renderFmtStdout(results []driver.FormatResult, hasErrors *bool) {
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			fmt.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		_, _ = os.Stdout.Write(res.Formatted)
	}
}

func renderFmtText(results []driver.FormatResult, check, quiet bool, hasErrors, hasChanges *bool) {
	changed := color.New(color.FgYellow)
	failed := color.New(color.FgRed)
	for _, res := range results {
		if res.Err != nil {
			*hasErrors = true
			failed.Fprintf(os.Stderr, "fmt: %s: %v\n", res.Path, res.Err)
			continue
		}
		if res.Changed {
			*hasChanges = true
			if check {
				changed.Printf("would reformat %s\n", res.Path)
			} else if !quiet {
				fmt.Printf("reformatted %s\n", res.Path)
			}
		}
	}
}

type fmtPayload struct {
	Path      string `json:"path"`
	Changed   bool   `json:"changed"`
	FromCache bool   `json:"from_cache,omitempty"`
	Error     string `json:"error,omitempty"`
}

func renderFmtJSON(out io.Writer, results []driver.FormatResult) error {
	payload := make([]fmtPayload, 0, len(results))
	for _, res := range results {
		p := fmtPayload{Path: res.Path, Changed: res.Changed, FromCache: res.FromCache}
		if res.Err != nil {
			p.Error = res.Err.Error()
		}
		payload = append(payload, p)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
