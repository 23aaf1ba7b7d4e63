package main

import (
	"context"

	"github.com/spf13/cobra"

	dom "github.com/shipmight/shipmight/usecase/domain"
)

func newCmdAdminDomain() *cobra.Command {
	c := group("domain", "Domain admin commands", "dom")
	var (
		projectID string
		appID     string
	)
	list := leaf("list", "List domains", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.domain.list", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.domainUseCase().List(ctx, &dom.ListInput{ProjectID: projectID, AppID: appID})
			if err != nil {
				return nil, err
			}
			return out.Domains, nil
		})
	})
	list.Flags().StringVar(&projectID, "project", "", "Only domains of this project")
	list.Flags().StringVar(&appID, "app", "", "Only domains routed to this app")
	c.AddCommand(list)
	c.AddCommand(leaf("get <id>", "Get a domain", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.domain.get", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.domainUseCase().Get(ctx, &dom.GetInput{DomainID: args[0]})
			if err != nil {
				return nil, err
			}
			return out.Domain, nil
		})
	}))

	var createFile string
	c.AddCommand(withSpecFlag(leaf("create", "Create a domain (from spec file)", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		var in dom.CreateInput
		if err := readSpec(cmd, createFile, &in); err != nil {
			return err
		}
		return execute(cmd, "admin.domain.create", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.domainUseCase().Create(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.Domain, nil
		})
	}), &createFile, "domain"))

	var updateFile string
	c.AddCommand(withSpecFlag(leaf("update <id>", "Update a domain (merge from spec)", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		var in dom.UpdateInput
		if err := readSpec(cmd, updateFile, &in); err != nil {
			return err
		}
		in.DomainID = args[0]
		return execute(cmd, "admin.domain.update", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.domainUseCase().Update(ctx, &in)
			if err != nil {
				return nil, err
			}
			return out.Domain, nil
		})
	}), &updateFile, "domain"))

	c.AddCommand(leaf("delete <id>", "Delete a domain", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.domain.delete", args[0], func(ctx context.Context, b *backend) (any, error) {
			if _, err := b.domainUseCase().Delete(ctx, &dom.DeleteInput{DomainID: args[0]}); err != nil {
				return nil, err
			}
			return deleted{Deleted: args[0]}, nil
		})
	}))
	return c
}
