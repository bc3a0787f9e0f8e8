package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"backoffice/internal/config"
	"backoffice/internal/eventbus"
	"backoffice/internal/features"
	"backoffice/internal/mock"
	"backoffice/internal/table"
)

// Keys that flags and BACKOFFICE_* variables may override
const (
	keyDefaultFeature = "default_feature"
	keyRowsPerPage    = "rows_per_page"
	keyMouse          = "ui.mouse"
	keyLogLevel       = "log.level"
)

var flagKeys = map[string]string{
	"feature": keyDefaultFeature,
	"rows":    keyRowsPerPage,
	"mouse":   keyMouse,
}

// loadSettings reads the config file and layers flags and environment on top.
// Flags win over the environment, which wins over the file.
func loadSettings(cmd *cobra.Command, opts *rootOptions, bus eventbus.EventBus) (*config.Config, config.ConfigService, error) {
	svc, err := config.NewConfigServiceWithBus(opts.configPath, bus)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve config: %w", err)
	}
	cfg, err := svc.Load()
	if err != nil {
		return nil, nil, err
	}

	v := viper.New()
	v.SetEnvPrefix("BACKOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, nil, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := applyOverrides(cfg, v); err != nil {
		return nil, nil, err
	}
	return cfg, svc, nil
}

func applyOverrides(cfg *config.Config, v *viper.Viper) error {
	if v.IsSet(keyDefaultFeature) {
		cfg.DefaultFeature = strings.TrimSpace(v.GetString(keyDefaultFeature))
	}
	if v.IsSet(keyRowsPerPage) {
		n := v.GetInt(keyRowsPerPage)
		if !table.ValidRowsPerPage(n) {
			return fmt.Errorf("%w: got %d", table.ErrRowsPerPage, n)
		}
		cfg.RowsPerPage = n
	}
	if v.IsSet(keyMouse) {
		cfg.UISettings.Mouse = v.GetBool(keyMouse)
	}
	if v.IsSet(keyLogLevel) {
		cfg.Log.Level = v.GetString(keyLogLevel)
	}
	return nil
}

// newSource builds the mock data source described by cfg
func newSource(cfg *config.Config) features.Source {
	return features.Source{
		Provider:    mock.NewProvider(cfg.Mock.Seed),
		Count:       cfg.Mock.RecordsPerFeature,
		FoodLatency: time.Duration(cfg.Mock.FoodLatencyMS) * time.Millisecond,
	}
}
