package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/shipmight/shipmight/usecase/bootstrap"
)

func newCmdBootstrap() *cobra.Command {
	var username, password string
	c := leaf("bootstrap", "Create the system namespace, default app chart and first admin user", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		if password == "" {
			password = os.Getenv("SHIPMIGHT_ADMIN_PASSWORD")
		}
		return execute(cmd, "bootstrap", "", func(ctx context.Context, b *backend) (any, error) {
			return b.bootstrapUseCase().Ensure(ctx, &bootstrap.EnsureInput{
				AdminUsername: username,
				AdminPassword: password,
			})
		})
	})
	c.Flags().StringVar(&username, "admin-username", "", "Username of the first admin (skipped when empty)")
	c.Flags().StringVar(&password, "admin-password", "", "Password of the first admin (env SHIPMIGHT_ADMIN_PASSWORD)")
	addOutputFlag(c)
	return c
}
