package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/shipmight/shipmight/usecase/deployment"
	"github.com/shipmight/shipmight/usecase/release"
	"github.com/shipmight/shipmight/usecase/run"
)

func newCmdDeployment() *cobra.Command {
	c := group("deployment", "Inspect app deployments", "deploy")
	addOutputFlag(c)
	c.AddCommand(leaf("list <appId>", "List deployments of an app with derived status", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "deployment.list", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.deploymentUseCase().List(ctx, &deployment.ListInput{AppID: args[0]})
			if err != nil {
				return nil, err
			}
			return out.Deployments, nil
		})
	}))
	return c
}

func newCmdRun() *cobra.Command {
	c := group("run", "Inspect one-off job runs", "runs")
	addOutputFlag(c)
	c.AddCommand(leaf("list <appId>", "List runs of an app", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "run.list", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.runUseCase().List(ctx, &run.ListInput{AppID: args[0]})
			if err != nil {
				return nil, err
			}
			return out.Runs, nil
		})
	}))
	c.AddCommand(leaf("get <projectId> <runId>", "Get a run", cobra.ExactArgs(2), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "run.get", args[1], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.runUseCase().Get(ctx, &run.GetInput{ProjectID: args[0], RunID: args[1]})
			if err != nil {
				return nil, err
			}
			return out.Run, nil
		})
	}))
	return c
}

func newCmdRelease() *cobra.Command {
	c := group("release", "Inspect app releases", "releases")
	addOutputFlag(c)
	c.AddCommand(leaf("list <appId>", "List releases of an app", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "release.list", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.releaseUseCase().List(ctx, &release.ListInput{AppID: args[0]})
			if err != nil {
				return nil, err
			}
			return out.Releases, nil
		})
	}))
	return c
}
