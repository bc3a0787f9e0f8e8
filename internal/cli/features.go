package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"backoffice/internal/features"
)

func newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "List the available features",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			t := table.New().
				Border(lipgloss.NormalBorder()).
				Headers("#", "SLUG", "TITLE")
			for i, f := range features.Default().All() {
				t.Row(strconv.Itoa(i+1), f.Slug(), f.Title())
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
		},
	}
}
