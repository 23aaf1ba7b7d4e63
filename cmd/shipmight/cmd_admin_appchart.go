package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/shipmight/shipmight/usecase/appchart"
)

func newCmdAdminAppChart() *cobra.Command {
	c := group("app-chart", "App chart admin commands", "chart")
	list := leaf("list", "List app charts", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.appchart.list", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.appChartUseCase().List(ctx, &appchart.ListInput{})
			if err != nil {
				return nil, err
			}
			return out.AppCharts, nil
		})
	})
	c.AddCommand(list)
	c.AddCommand(leaf("get <id>", "Get an app chart", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.appchart.get", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.appChartUseCase().Get(ctx, &appchart.GetInput{AppChartID: args[0]})
			if err != nil {
				return nil, err
			}
			return out.AppChart, nil
		})
	}))

	var createFile string
	c.AddCommand(withSpecFlag(leaf("create", "Create an app chart (from spec file)", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		var in appchart.CreateInput
		if err := readSpec(cmd, createFile, &in); err != nil {
			return err
		}
		return execute(cmd, "admin.appchart.create", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.appChartUseCase().Create(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.AppChart, nil
		})
	}), &createFile, "app chart"))

	var updateFile string
	c.AddCommand(withSpecFlag(leaf("update <id>", "Update an app chart (merge from spec)", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		var in appchart.UpdateInput
		if err := readSpec(cmd, updateFile, &in); err != nil {
			return err
		}
		in.AppChartID = args[0]
		return execute(cmd, "admin.appchart.update", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.appChartUseCase().Update(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.AppChart, nil
		})
	}), &updateFile, "app chart"))

	c.AddCommand(leaf("delete <id>", "Delete an app chart", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.appchart.delete", args[0], func(ctx context.Context, b *backend) (any, error) {
			if _, err := b.appChartUseCase().Delete(ctx, &appchart.DeleteInput{AppChartID: args[0]}); err != nil {
				return nil, err
			}
			return deleted{Deleted: args[0]}, nil
		})
	}))
	return c
}
