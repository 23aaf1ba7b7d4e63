package main

import (
	"context"

	"github.com/spf13/cobra"
)

// execute builds the backend and runs fn inside a CMD span with a timeout,
// printing whatever fn returns.
func execute(cmd *cobra.Command, operation, resourceID string, fn func(ctx context.Context, b *backend) (any, error)) (err error) {
	b, err := buildBackend(cmd)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), cmdTimeout)
	defer cancel()
	ctx, cleanup := withCmdRunLogger(ctx, operation, resourceID)
	defer func() { cleanup(err) }()

	out, err := fn(ctx, b)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return printOutput(cmd, out)
}

// group returns a parent command that only prints help.
func group(use, short string, aliases ...string) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Aliases:            aliases,
		Short:              short,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
}

// leaf returns a subcommand running fn.
func leaf(use, short string, args cobra.PositionalArgs, fn func(cmd *cobra.Command, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		Args:               args,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE:               fn,
	}
}

// withSpecFlag registers the required -f flag.
func withSpecFlag(c *cobra.Command, file *string, what string) *cobra.Command {
	c.Flags().StringVarP(file, "file", "f", "", "Path to "+what+" spec (YAML), or '-' for stdin")
	_ = c.MarkFlagRequired("file")
	return c
}

type deleted struct {
	Deleted string `json:"deleted"`
}
