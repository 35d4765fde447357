package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gantt/internal/config"
	"gantt/internal/store"
	"gantt/internal/timeline"

	"github.com/spf13/cobra"
)

var (
	lanesMinGap int
	lanesFormat string
)

var lanesCmd = &cobra.Command{
	Use:   "lanes [FILE]",
	Short: "Print the lane assignment of an items file",
	Long: `Packs the items into lanes the same way the TUI does and prints them.

Without --min-gap the gap follows the config: view.min_gap_days when set,
otherwise the automatic gap for view.cells_per_day.`,
	Example: `  gantt lanes plan.yaml
  gantt lanes plan.csv --min-gap 3 --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLanes,
}

func init() {
	lanesCmd.Flags().IntVar(&lanesMinGap, "min-gap", 0, "minimum days between items sharing a lane")
	lanesCmd.Flags().StringVarP(&lanesFormat, "format", "o", "text", "output format: text or json")
	rootCmd.AddCommand(lanesCmd)
}

func runLanes(cmd *cobra.Command, args []string) error {
	if lanesFormat != "text" && lanesFormat != "json" {
		return fmt.Errorf("invalid format %q: use text or json", lanesFormat)
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

	gap := gapDays(cmd, cfg)
	lanes := timeline.AssignLanes(st.Items(), timeline.LaneOptions{MinGapDays: gap})
	if err := timeline.ValidateLanes(lanes, gap); err != nil {
		return fmt.Errorf("lane assignment: %w", err)
	}

	out := cmd.OutOrStdout()
	if lanesFormat == "json" {
		return writeLanesJSON(out, lanes)
	}
	return writeLanesText(out, lanes, gap)
}

// gapDays is --min-gap when given, otherwise the configured gap.
func gapDays(cmd *cobra.Command, cfg *config.Config) int {
	if cmd.Flags().Changed("min-gap") {
		return max(lanesMinGap, 0)
	}
	return cfg.View.GapDays(cfg.View.CellsPerDay)
}

func writeLanesText(w io.Writer, lanes []timeline.Lane, gap int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%d lanes, gap %d days\n", len(lanes), gap)
	for i, lane := range lanes {
		fmt.Fprintf(tw, "\nLane %d\n", i+1)
		for _, it := range lane {
			fmt.Fprintf(tw, "  %s\t%s\t%dd\t%s\n", it.ID, it.Range(), it.Range().Days(), it.Name)
		}
	}
	return tw.Flush()
}

func writeLanesJSON(w io.Writer, lanes []timeline.Lane) error {
	if lanes == nil {
		lanes = []timeline.Lane{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(lanes)
}
