package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shipmight/shipmight/config/shipmightcfg"
	"github.com/shipmight/shipmight/internal/kubeconfig"
)

func newCmdKubeconfig() *cobra.Command {
	var (
		format  string
		ctxName string
		rename  string
	)
	c := &cobra.Command{
		Use:   "kubeconfig",
		Short: "Print the normalized kubeconfig used by a kube:<path> store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFrom(cmd)
			if err != nil {
				return err
			}
			u, err := shipmightcfg.ParseStoreURL(cfg.Store.URL)
			if err != nil {
				return err
			}
			if u.Backend != shipmightcfg.BackendKube || u.Path == "" {
				return fmt.Errorf("store url %q does not name a kubeconfig file", cfg.Store.URL)
			}
			kcfg, err := kubeconfig.LoadFile(u.Path, kubeconfig.Options{
				Context:   firstNonEmpty(ctxName, cfg.Kube.Context),
				Rename:    rename,
				Namespace: cfg.Store.SystemNamespace,
			})
			if err != nil {
				return err
			}
			return kubeconfig.Print(cmd.OutOrStdout(), kcfg, format)
		},
	}
	c.Flags().StringVarP(&format, "format", "o", "yaml", "Output format (yaml|json)")
	c.Flags().StringVar(&ctxName, "context", "", "Context to keep (default kube.context, then current-context)")
	c.Flags().StringVar(&rename, "rename", "shipmight", "New name for the kept context, cluster and user (empty keeps names)")
	return c
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
