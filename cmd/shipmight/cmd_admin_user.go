package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/shipmight/shipmight/usecase/user"
)

func newCmdAdminUser() *cobra.Command {
	c := group("user", "User admin commands")
	list := leaf("list", "List users", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.user.list", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.userUseCase().List(ctx, &user.ListInput{})
			if err != nil {
				return nil, err
			}
			return out.Users, nil
		})
	})
	c.AddCommand(list)
	c.AddCommand(leaf("get <id>", "Get a user", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.user.get", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.userUseCase().Get(ctx, &user.GetInput{UserID: args[0]})
			if err != nil {
				return nil, err
			}
			return out.User, nil
		})
	}))

	var createFile string
	c.AddCommand(withSpecFlag(leaf("create", "Create a user (from spec file)", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		var in user.CreateInput
		if err := readSpec(cmd, createFile, &in); err != nil {
			return err
		}
		return execute(cmd, "admin.user.create", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.userUseCase().Create(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.User, nil
		})
	}), &createFile, "user"))

	var updateFile string
	c.AddCommand(withSpecFlag(leaf("update <id>", "Update a user (merge from spec)", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		var in user.UpdateInput
		if err := readSpec(cmd, updateFile, &in); err != nil {
			return err
		}
		in.UserID = args[0]
		return execute(cmd, "admin.user.update", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.userUseCase().Update(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.User, nil
		})
	}), &updateFile, "user"))

	c.AddCommand(leaf("delete <id>", "Delete a user", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.user.delete", args[0], func(ctx context.Context, b *backend) (any, error) {
			if _, err := b.userUseCase().Delete(ctx, &user.DeleteInput{UserID: args[0]}); err != nil {
				return nil, err
			}
			return deleted{Deleted: args[0]}, nil
		})
	}))
	return c
}
