package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/shipmight/shipmight/config/shipmightcfg"
	"github.com/shipmight/shipmight/internal/logging"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shipmight",
		Short:   "Shipmight control plane CLI",
		Long:    "Shipmight control plane CLI. Manages projects, apps and their cluster state.",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "Config file (env "+shipmightcfg.ConfigEnvKey+") (default ./"+shipmightcfg.DefaultConfigFile+")")
	pf.String("db-url", "", "Store URL (env "+shipmightcfg.DBURLEnvKey+") (memory: | sqlite:/path/to.db | kube:[/path/to/kubeconfig])")
	pf.String("log-format", "", "Log format (human|text|json) (env "+shipmightcfg.LogFormatEnvKey+")")
	pf.String("log-level", "", "Log level (DEBUG|INFO|WARN|ERROR)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		level, err := logging.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return err
		}
		l, err := logging.New(cfg.Logging.Format, level)
		if err != nil {
			return err
		}
		l = l.With("runId", uuid.NewString())
		quietKlog()
		ctx := logging.WithLogger(c.Context(), l)
		ctx = withConfig(ctx, cfg)
		c.SetContext(ctx)
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdConfig())
	cmd.AddCommand(newCmdKubeconfig())
	cmd.AddCommand(newCmdBootstrap())
	cmd.AddCommand(newCmdAdmin())
	cmd.AddCommand(newCmdDeployment())
	cmd.AddCommand(newCmdRun())
	cmd.AddCommand(newCmdRelease())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
