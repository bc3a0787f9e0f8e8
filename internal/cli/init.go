package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"backoffice/internal/config"
)

func newInitCmd(root *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := config.NewConfigService(root.configPath)
			if err != nil {
				return fmt.Errorf("resolve config: %w", err)
			}

			if _, err := os.Stat(svc.Path()); err == nil && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", svc.Path())
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat config: %w", err)
			}

			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", svc.Path())
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config")
	return cmd
}
