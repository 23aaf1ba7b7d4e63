package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/shipmight/shipmight/usecase/deployhook"
)

func newCmdAdminDeployHook() *cobra.Command {
	c := group("deploy-hook", "Deploy hook admin commands", "hook")
	var (
		projectID string
		appID     string
	)
	list := leaf("list", "List deploy hooks", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.deployhook.list", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.deployHookUseCase().List(ctx, &deployhook.ListInput{ProjectID: projectID, AppID: appID})
			if err != nil {
				return nil, err
			}
			return out.DeployHooks, nil
		})
	})
	list.Flags().StringVar(&projectID, "project", "", "Only hooks of this project")
	list.Flags().StringVar(&appID, "app", "", "Only hooks of this app")
	c.AddCommand(list)
	c.AddCommand(leaf("get <id>", "Get a deploy hook", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.deployhook.get", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.deployHookUseCase().Get(ctx, &deployhook.GetInput{DeployHookID: args[0]})
			if err != nil {
				return nil, err
			}
			return out.DeployHook, nil
		})
	}))

	var createFile string
	c.AddCommand(withSpecFlag(leaf("create", "Create a deploy hook (from spec file)", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		var in deployhook.CreateInput
		if err := readSpec(cmd, createFile, &in); err != nil {
			return err
		}
		return execute(cmd, "admin.deployhook.create", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.deployHookUseCase().Create(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.DeployHook, nil
		})
	}), &createFile, "deploy hook"))

	var updateFile string
	c.AddCommand(withSpecFlag(leaf("update <id>", "Update a deploy hook (merge from spec)", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		var in deployhook.UpdateInput
		if err := readSpec(cmd, updateFile, &in); err != nil {
			return err
		}
		in.DeployHookID = args[0]
		return execute(cmd, "admin.deployhook.update", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.deployHookUseCase().Update(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.DeployHook, nil
		})
	}), &updateFile, "deploy hook"))

	c.AddCommand(leaf("delete <id>", "Delete a deploy hook", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.deployhook.delete", args[0], func(ctx context.Context, b *backend) (any, error) {
			if _, err := b.deployHookUseCase().Delete(ctx, &deployhook.DeleteInput{DeployHookID: args[0]}); err != nil {
				return nil, err
			}
			return deleted{Deleted: args[0]}, nil
		})
	}))
	return c
}
