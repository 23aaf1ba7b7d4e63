package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/shipmight/shipmight/usecase/masterdomain"
)

func newCmdAdminMasterDomain() *cobra.Command {
	c := group("master-domain", "Master domain admin commands", "mdom")
	list := leaf("list", "List master domains", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.masterdomain.list", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.masterDomainUseCase().List(ctx, &masterdomain.ListInput{})
			if err != nil {
				return nil, err
			}
			return out.MasterDomains, nil
		})
	})
	c.AddCommand(list)
	c.AddCommand(leaf("get <id>", "Get a master domain", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.masterdomain.get", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.masterDomainUseCase().Get(ctx, &masterdomain.GetInput{MasterDomainID: args[0]})
			if err != nil {
				return nil, err
			}
			return out.MasterDomain, nil
		})
	}))

	var createFile string
	c.AddCommand(withSpecFlag(leaf("create", "Create a master domain (from spec file)", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		var in masterdomain.CreateInput
		if err := readSpec(cmd, createFile, &in); err != nil {
			return err
		}
		return execute(cmd, "admin.masterdomain.create", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.masterDomainUseCase().Create(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.MasterDomain, nil
		})
	}), &createFile, "master domain"))

	var updateFile string
	c.AddCommand(withSpecFlag(leaf("update <id>", "Update a master domain (merge from spec)", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		var in masterdomain.UpdateInput
		if err := readSpec(cmd, updateFile, &in); err != nil {
			return err
		}
		in.MasterDomainID = args[0]
		return execute(cmd, "admin.masterdomain.update", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.masterDomainUseCase().Update(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.MasterDomain, nil
		})
	}), &updateFile, "master domain"))

	c.AddCommand(leaf("delete <id>", "Delete a master domain", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.masterdomain.delete", args[0], func(ctx context.Context, b *backend) (any, error) {
			if _, err := b.masterDomainUseCase().Delete(ctx, &masterdomain.DeleteInput{MasterDomainID: args[0]}); err != nil {
				return nil, err
			}
			return deleted{Deleted: args[0]}, nil
		})
	}))
	return c
}
