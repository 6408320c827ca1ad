package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/giftcheck/internal/catalog"
	"github.com/roach88/giftcheck/internal/evolution"
)

// ValidationIssue is one problem found in a catalog directory.
type ValidationIssue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid      bool              `json:"valid"`
	Files      int               `json:"files"`
	Gifts      int               `json:"gifts"`
	Evolutions int               `json:"evolutions"`
	Errors     []ValidationIssue `json:"errors,omitempty"`
	Warnings   []evolution.Cycle `json:"warnings,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <catalog-dir>",
		Short: "Validate catalog files without matching",
		Long: `Check every catalog file in a directory against the catalog schema
and report each problem with its error code and position. Cycles in the
evolution edges are reported as warnings and do not fail validation.

Exits 1 when any file is invalid and 2 when the directory cannot be read.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	result, loadErrors := catalog.LoadDir(dir, catalog.LoadModeCollectAll)

	// Directory not found, no files, etc.
	if result == nil && len(loadErrors) > 0 {
		return outputValidateError(formatter, errorCode(loadErrors[0]), loadErrors[0].Error())
	}

	summary := ValidationResult{
		Valid:      len(loadErrors) == 0,
		Files:      len(result.Files),
		Gifts:      result.Catalog.Len(),
		Evolutions: len(result.Evolutions),
	}
	for _, err := range loadErrors {
		summary.Errors = append(summary.Errors, newValidationIssue(err))
	}
	if cycles := evolution.AnalyzeCycles(result.Evolutions); len(cycles) > 0 {
		summary.Warnings = cycles
	}
	formatter.VerboseLog("Loaded %d file(s) from %s", summary.Files, dir)

	if !summary.Valid {
		return outputValidationErrors(formatter, summary)
	}
	return outputValidateSuccess(formatter, summary)
}

func newValidationIssue(err error) ValidationIssue {
	var loadErr *catalog.LoadError
	if !errors.As(err, &loadErr) {
		return ValidationIssue{Code: catalog.ErrCodeGeneric, Message: err.Error()}
	}

	issue := ValidationIssue{Code: loadErr.Code, Message: loadErr.Message, Path: loadErr.Path}
	if loadErr.Pos.IsValid() {
		issue.Line = loadErr.Pos.Line()
		issue.Column = loadErr.Pos.Column()
	}
	return issue
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, summary ValidationResult) error {
	if formatter.JSON() {
		return formatter.Success(summary)
	}

	fmt.Fprintf(formatter.Writer, "✓ Catalog valid: %d gift(s), %d evolution edge(s) in %d file(s)\n",
		summary.Gifts, summary.Evolutions, summary.Files)
	printWarnings(formatter, summary.Warnings)
	return nil
}

// outputValidateError outputs a single command-level error.
func outputValidateError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// outputValidationErrors outputs every problem found.
func outputValidationErrors(formatter *OutputFormatter, summary ValidationResult) error {
	failed := NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(summary.Errors)))

	if formatter.JSON() {
		first := summary.Errors[0]
		if err := formatter.encode(CLIResponse{
			Status: "error",
			Data:   summary,
			Error:  &CLIError{Code: first.Code, Message: first.Message},
		}); err != nil {
			return err
		}
		return failed
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)

	for _, issue := range summary.Errors {
		switch {
		case issue.Line > 0:
			fmt.Fprintf(formatter.Writer, "%s:%d:%d\n", issue.Path, issue.Line, issue.Column)
		case issue.Path != "":
			fmt.Fprintln(formatter.Writer, issue.Path)
		}
		fmt.Fprintf(formatter.Writer, "  %s: %s\n\n", issue.Code, issue.Message)
	}
	printWarnings(formatter, summary.Warnings)

	return failed
}

func printWarnings(formatter *OutputFormatter, warnings []evolution.Cycle) {
	for _, w := range warnings {
		fmt.Fprintf(formatter.Writer, "⚠ %s\n", w.Message)
	}
}
