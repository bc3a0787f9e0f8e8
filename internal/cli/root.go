// Package cli wires the backoffice commands: the interactive dashboard and
// its headless helpers.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X backoffice/internal/cli.Version=..."
var Version = "dev"

// rootOptions holds the flags shared by every command
type rootOptions struct {
	configPath string
	feature    string
	rows       int
	mouse      bool
}

// NewRootCmd builds the command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "backoffice",
		Short: "Terminal back-office dashboard",
		Long: `backoffice renders CRUD screens for orders, inventory, staff and the rest of
a small ERP on generated in-memory data. Nothing is persisted.

Settings come from the TOML config file and can be overridden with flags or
BACKOFFICE_* environment variables (BACKOFFICE_ROWS_PER_PAGE, BACKOFFICE_DEFAULT_FEATURE,
BACKOFFICE_UI_MOUSE, BACKOFFICE_LOG_LEVEL).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/backoffice/config.toml)")
	cmd.Flags().StringVarP(&opts.feature, "feature", "f", "", "feature to open on start, e.g. orders")
	cmd.Flags().IntVarP(&opts.rows, "rows", "r", 0, "rows per page (5, 10 or 25)")
	cmd.Flags().BoolVar(&opts.mouse, "mouse", true, "enable mouse support")

	cmd.AddCommand(
		newInitCmd(opts),
		newFeaturesCmd(),
		newListCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
