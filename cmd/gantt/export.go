package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gantt/internal/config"
	"gantt/internal/fsutil"
	"gantt/internal/reports"
	"gantt/internal/store"

	"github.com/spf13/cobra"
)

var (
	exportFormat   string
	exportOutput   string
	exportRender   bool
	exportWidth    int
	exportDayWidth int
	exportMinGap   int
)

var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Write a lane report as Markdown, JSON or SVG",
	Long: `Packs the items into lanes and writes a report with per-lane utilization.

Markdown (the default) can be rendered for the terminal with --render. SVG
draws the chart with the theme's primary color. With --output the previous
file is kept as FILE.bak.`,
	Example: `  gantt export plan.yaml
  gantt export plan.yaml --render
  gantt export plan.json --format json
  gantt export plan.csv --format svg --output plan.svg`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "markdown", "output format: markdown, json or svg")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().BoolVar(&exportRender, "render", false, "render Markdown for the terminal")
	exportCmd.Flags().IntVar(&exportWidth, "width", 80, "wrap width for --render")
	exportCmd.Flags().IntVar(&exportDayWidth, "day-width", 0, "SVG pixels per day (default 12)")
	exportCmd.Flags().IntVar(&exportMinGap, "min-gap", 0, "minimum days between items sharing a lane")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format := exportFormat
	if format == "md" {
		format = "markdown"
	}
	if format != "markdown" && format != "json" && format != "svg" {
		return fmt.Errorf("invalid format %q: use markdown, json or svg", exportFormat)
	}
	if exportRender && format != "markdown" {
		return fmt.Errorf("--render only applies to markdown")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	items, _, err := loadItems(itemsPath(args, cfg))
	if err != nil {
		return err
	}
	st, err := store.New(items)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}

	gap := cfg.View.GapDays(cfg.View.CellsPerDay)
	if cmd.Flags().Changed("min-gap") {
		gap = max(exportMinGap, 0)
	}
	report := reports.NewGenerator(st, reports.Options{
		MinGapDays: gap,
		PadDays:    cfg.View.PadDays,
	}).Generate()

	output, err := formatReport(report, format, cfg)
	if err != nil {
		return err
	}
	if exportRender {
		output = reports.RenderMarkdown(output, cfg.View.MarkdownStyle, exportWidth)
	}

	if exportOutput == "" {
		_, err := io.WriteString(cmd.OutOrStdout(), output)
		return err
	}
	return writeReport(cmd.OutOrStdout(), exportOutput, output)
}

func formatReport(report *reports.Report, format string, cfg *config.Config) (string, error) {
	switch format {
	case "json":
		data, err := reports.FormatJSON(report)
		if err != nil {
			return "", fmt.Errorf("formatting JSON: %w", err)
		}
		return string(data) + "\n", nil
	case "svg":
		opts := reports.DefaultSVGOptions()
		opts.DayWidth = exportDayWidth
		if cfg.Theme.Primary != "" {
			opts.Bar = cfg.Theme.Primary
		}
		return reports.FormatSVG(report, opts), nil
	default:
		return reports.FormatMarkdown(report), nil
	}
}

func writeReport(status io.Writer, path, output string) error {
	path = config.ExpandHome(path)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := fsutil.WriteFileWithBackup(path, []byte(output), 0600); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	fmt.Fprintf(status, "Report written to %s\n", path)
	return nil
}
