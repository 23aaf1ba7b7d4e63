package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/shipmight/shipmight/usecase/registry"
)

func newCmdAdminRegistry() *cobra.Command {
	c := group("registry", "Registry admin commands", "reg")
	list := leaf("list", "List registries", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.registry.list", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.registryUseCase().List(ctx, &registry.ListInput{})
			if err != nil {
				return nil, err
			}
			return out.Registries, nil
		})
	})
	c.AddCommand(list)
	c.AddCommand(leaf("get <id>", "Get a registry", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.registry.get", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.registryUseCase().Get(ctx, &registry.GetInput{RegistryID: args[0]})
			if err != nil {
				return nil, err
			}
			return out.Registry, nil
		})
	}))

	var createFile string
	c.AddCommand(withSpecFlag(leaf("create", "Create a registry (from spec file)", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		var in registry.CreateInput
		if err := readSpec(cmd, createFile, &in); err != nil {
			return err
		}
		return execute(cmd, "admin.registry.create", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.registryUseCase().Create(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.Registry, nil
		})
	}), &createFile, "registry"))

	var updateFile string
	c.AddCommand(withSpecFlag(leaf("update <id>", "Update a registry (merge from spec)", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		var in registry.UpdateInput
		if err := readSpec(cmd, updateFile, &in); err != nil {
			return err
		}
		in.RegistryID = args[0]
		return execute(cmd, "admin.registry.update", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.registryUseCase().Update(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.Registry, nil
		})
	}), &updateFile, "registry"))

	c.AddCommand(leaf("delete <id>", "Delete a registry", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.registry.delete", args[0], func(ctx context.Context, b *backend) (any, error) {
			if _, err := b.registryUseCase().Delete(ctx, &registry.DeleteInput{RegistryID: args[0]}); err != nil {
				return nil, err
			}
			return deleted{Deleted: args[0]}, nil
		})
	}))
	c.AddCommand(leaf("usage", "Show which apps use each registry", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.registry.usage", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.registryUseCase().Usage(ctx, &registry.UsageInput{})
			if err != nil {
				return nil, err
			}
			return out.Usage, nil
		})
	}))
	return c
}
