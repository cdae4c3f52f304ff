package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/stackvity/stack-charset/internal/cli/config"
	"github.com/stackvity/stack-charset/pkg/charset"
)

// fileReport is the per-file detection outcome rendered by every output
// format.
type fileReport struct {
	Path        string                    `json:"path" yaml:"path"`
	Encoding    string                    `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Newlines    string                    `json:"newlines,omitempty" yaml:"newlines,omitempty"`
	DecodedText string                    `json:"decodedText,omitempty" yaml:"decodedText,omitempty"`
	Candidates  []charset.ScoredCandidate `json:"candidates,omitempty" yaml:"candidates,omitempty"`
	Error       string                    `json:"error,omitempty" yaml:"error,omitempty"`
}

var (
	pathStyle  = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var detectCmd = &cobra.Command{
	Use:   "detect <path>...",
	Short: "Detect the encoding and newline style of one or more files.",
	Long: `detect analyzes each given file and reports its most plausible character
encoding (as a canonical name such as utf_8, cp1252 or cp949) and its
dominant line-ending convention (CRLF, LF or CR).

By default at most --sample-size bytes are read per file; pass --full to
analyze entire files regardless of size.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, logger, err := config.LoadAndValidate(cfgFile, verbose, cmd.Flags())
		if err != nil {
			return err
		}

		full, _ := cmd.Flags().GetBool("full")
		showText, _ := cmd.Flags().GetBool("show-text")
		format, _ := cmd.Flags().GetString("output")
		if format != "text" && format != "json" && format != "yaml" {
			return fmt.Errorf("%w: unknown output format %q (want text, json or yaml)",
				charset.ErrConfigValidation, format)
		}

		var bar *progressbar.ProgressBar
		if len(args) > 1 && !verbose && format == "text" && term.IsTerminal(int(os.Stderr.Fd())) {
			bar = progressbar.Default(int64(len(args)), "analyzing")
		}

		reports := make([]fileReport, 0, len(args))
		failed := 0
		for _, path := range args {
			report := fileReport{Path: path}

			var match *charset.Match
			var aerr error
			if full {
				match, aerr = charset.AnalyzeFile(path, opts)
			} else {
				match, aerr = charset.AnalyzeFileSample(path, opts)
			}

			if aerr != nil {
				logger.Debug("analysis failed", "path", path, "error", aerr)
				report.Error = aerr.Error()
				failed++
			} else {
				report.Encoding = match.Encoding
				report.Newlines = string(match.Newlines)
				if showText {
					report.DecodedText = match.DecodedText
				}
				if verbose {
					report.Candidates = match.Candidates
				}
			}
			reports = append(reports, report)

			if bar != nil {
				_ = bar.Add(1)
			}
		}
		if bar != nil {
			_ = bar.Finish()
		}

		if err := renderReports(cmd, format, reports); err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d files could not be analyzed", failed, len(args))
		}
		return nil
	},
}

func renderReports(cmd *cobra.Command, format string, reports []fileReport) error {
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		data, err := json.MarshalIndent(reports, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(reports)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(data))
	default:
		for _, r := range reports {
			if r.Error != "" {
				fmt.Fprintf(out, "%s: %s\n", pathStyle.Render(r.Path), errorStyle.Render(r.Error))
				continue
			}
			fmt.Fprintf(out, "%s: %s %s  %s %s\n",
				pathStyle.Render(r.Path),
				labelStyle.Render("encoding="), r.Encoding,
				labelStyle.Render("newlines="), r.Newlines)
			for _, sc := range r.Candidates {
				fmt.Fprintf(out, "  %s score=%.3f errorRatio=%.3f\n",
					labelStyle.Render(sc.Candidate), sc.Score, sc.ErrorRatio)
			}
			if r.DecodedText != "" {
				fmt.Fprintln(out, r.DecodedText)
			}
		}
	}
	return nil
}

func init() {
	detectCmd.Flags().Int("sample-size", charset.DefaultMaxSampleSize, "Maximum number of bytes to read per file for detection")
	detectCmd.Flags().Int("chunk-size", charset.DefaultChunkSize, "Read granularity in bytes")
	detectCmd.Flags().Bool("full", false, "Read entire files instead of a bounded sample")
	detectCmd.Flags().Bool("show-text", false, "Print the decoded text of each file")
	detectCmd.Flags().String("output", "text", `Output format ("text", "json", "yaml")`)
}
