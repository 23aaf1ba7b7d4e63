package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shipmight/shipmight/config/shipmightcfg"
)

type configKey struct{}

func withConfig(ctx context.Context, cfg *shipmightcfg.Root) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFrom returns the configuration resolved in PersistentPreRunE.
func configFrom(cmd *cobra.Command) (*shipmightcfg.Root, error) {
	if cfg, ok := cmd.Context().Value(configKey{}).(*shipmightcfg.Root); ok && cfg != nil {
		return cfg, nil
	}
	return loadConfig(cmd)
}

// loadConfig resolves the config file and applies explicitly set flags on top.
func loadConfig(cmd *cobra.Command) (*shipmightcfg.Root, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := shipmightcfg.Resolve(path)
	if err != nil {
		return nil, err
	}
	changed := false
	for flag, dst := range map[string]*string{
		"db-url":     &cfg.Store.URL,
		"log-format": &cfg.Logging.Format,
		"log-level":  &cfg.Logging.Level,
	} {
		if f := findFlag(cmd, flag); f != nil && f.Changed {
			*dst = f.Value.String()
			changed = true
		}
	}
	if changed {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("flags: %w", err)
		}
	}
	return cfg, nil
}

func newCmdConfig() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			return printYAMLv3(cmd, cfg)
		},
	}
}
