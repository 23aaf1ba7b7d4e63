package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/shipmight/shipmight/usecase/app"
)

func newCmdAdminApp() *cobra.Command {
	c := group("app", "App admin commands", "apps")
	var (
		projectID string
	)
	list := leaf("list", "List apps", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.app.list", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.appUseCase().List(ctx, &app.ListInput{ProjectID: projectID})
			if err != nil {
				return nil, err
			}
			return out.Apps, nil
		})
	})
	list.Flags().StringVar(&projectID, "project", "", "Only apps of this project")
	c.AddCommand(list)
	c.AddCommand(leaf("get <id>", "Get an app", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.app.get", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.appUseCase().Get(ctx, &app.GetInput{AppID: args[0]})
			if err != nil {
				return nil, err
			}
			return out.App, nil
		})
	}))

	var createFile string
	c.AddCommand(withSpecFlag(leaf("create", "Create an app (from spec file)", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		var in app.CreateInput
		if err := readSpec(cmd, createFile, &in); err != nil {
			return err
		}
		return execute(cmd, "admin.app.create", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.appUseCase().Create(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.App, nil
		})
	}), &createFile, "app"))

	var updateFile string
	c.AddCommand(withSpecFlag(leaf("update <id>", "Update an app (merge from spec)", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		var in app.UpdateInput
		if err := readSpec(cmd, updateFile, &in); err != nil {
			return err
		}
		in.AppID = args[0]
		return execute(cmd, "admin.app.update", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.appUseCase().Update(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.App, nil
		})
	}), &updateFile, "app"))

	c.AddCommand(leaf("delete <id>", "Delete an app", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.app.delete", args[0], func(ctx context.Context, b *backend) (any, error) {
			if _, err := b.appUseCase().Delete(ctx, &app.DeleteInput{AppID: args[0]}); err != nil {
				return nil, err
			}
			return deleted{Deleted: args[0]}, nil
		})
	}))
	return c
}
