package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/shipmight/shipmight/usecase/project"
)

func newCmdAdminProject() *cobra.Command {
	c := group("project", "Project admin commands", "prj")
	c.AddCommand(leaf("list", "List projects", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.project.list", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.projectUseCase().List(ctx, &project.ListInput{})
			if err != nil {
				return nil, err
			}
			return out.Projects, nil
		})
	}))
	c.AddCommand(leaf("get <id>", "Get a project", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.project.get", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.projectUseCase().Get(ctx, &project.GetInput{ProjectID: args[0]})
			if err != nil {
				return nil, err
			}
			return out.Project, nil
		})
	}))

	var createFile string
	c.AddCommand(withSpecFlag(leaf("create", "Create a project (from spec file)", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		var in project.CreateInput
		if err := readSpec(cmd, createFile, &in); err != nil {
			return err
		}
		return execute(cmd, "admin.project.create", in.Name, func(ctx context.Context, b *backend) (any, error) {
			out, err := b.projectUseCase().Create(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.Project, nil
		})
	}), &createFile, "project"))

	var updateFile string
	c.AddCommand(withSpecFlag(leaf("update <id>", "Update a project (merge from spec)", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		var in project.UpdateInput
		if err := readSpec(cmd, updateFile, &in); err != nil {
			return err
		}
		in.ProjectID = args[0]
		return execute(cmd, "admin.project.update", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.projectUseCase().Update(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.Project, nil
		})
	}), &updateFile, "project"))

	c.AddCommand(leaf("delete <id>", "Delete a project and everything in it", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.project.delete", args[0], func(ctx context.Context, b *backend) (any, error) {
			if _, err := b.projectUseCase().Delete(ctx, &project.DeleteInput{ProjectID: args[0]}); err != nil {
				return nil, err
			}
			return deleted{Deleted: args[0]}, nil
		})
	}))
	return c
}
