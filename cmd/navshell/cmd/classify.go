package cmd

import (
	"fmt"
	"strconv"

	"navshell/internal/shell"
	"navshell/internal/tui/layout"

	"github.com/spf13/cobra"
)

var classifyCols bool

// classifyCmd prints the layout a width resolves to
var classifyCmd = &cobra.Command{
	Use:   "classify <width>",
	Short: "Show the layout for a window width",
	Long: `Show the layout state, display mode and pane visibility a window of the
given width starts in, using the configured thresholds.

Examples:
  navshell classify 800
  navshell classify --cols 120`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyCols, "cols", false, "width is in terminal columns (multiplied by layout.cell_width)")
}

func runClassify(cmd *cobra.Command, args []string) error {
	width, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid width %q: %w", args[0], err)
	}
	if classifyCols {
		width = layout.LogicalWidth(width, cfg.Layout.CellWidth)
	}

	c := shell.New(nil,
		shell.WithLogger(log),
		shell.WithThresholds(layout.Thresholds{
			WideMinWidth:      cfg.Layout.WideMinWidth,
			PanoramicMinWidth: cfg.Layout.PanoramicMinWidth,
		}),
	)
	if err := c.Initialize(width, shell.Definitions{}); err != nil {
		return err
	}

	s := c.State()
	pane := "closed"
	if s.PaneOpen {
		pane = "open"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d: %s (%s, pane %s)\n", width, s.LayoutState, s.DisplayMode, pane)
	return nil
}
