package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/shipmight/shipmight/usecase/file"
)

// fileSpec is the YAML on-disk representation for create/update. Content is
// inline text; ContentFrom names a file to read instead.
type fileSpec struct {
	ProjectID   string  `yaml:"projectId"`
	Name        *string `yaml:"name"`
	Content     *string `yaml:"content"`
	ContentFrom string  `yaml:"contentFrom"`
}

func (s *fileSpec) content() ([]byte, error) {
	if s.ContentFrom != "" {
		return os.ReadFile(s.ContentFrom)
	}
	if s.Content != nil {
		return []byte(*s.Content), nil
	}
	return nil, nil
}

func newCmdAdminFile() *cobra.Command {
	c := group("file", "File admin commands")
	var projectID string
	list := leaf("list", "List files", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.file.list", "", func(ctx context.Context, b *backend) (any, error) {
			out, err := b.fileUseCase().List(ctx, &file.ListInput{ProjectID: projectID})
			if err != nil {
				return nil, err
			}
			return out.Files, nil
		})
	})
	list.Flags().StringVar(&projectID, "project", "", "Only files of this project")
	c.AddCommand(list)

	c.AddCommand(leaf("get <id>", "Get a file", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.file.get", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.fileUseCase().Get(ctx, &file.GetInput{FileID: args[0]})
			if err != nil {
				return nil, err
			}
			return out.File, nil
		})
	}))

	var createFile string
	c.AddCommand(withSpecFlag(leaf("create", "Create a file (from spec file)", cobra.NoArgs, func(cmd *cobra.Command, args []string) error {
		var spec fileSpec
		if err := readSpec(cmd, createFile, &spec); err != nil {
			return err
		}
		content, err := spec.content()
		if err != nil {
			return err
		}
		in := &file.CreateInput{ProjectID: spec.ProjectID, Content: content}
		if spec.Name != nil {
			in.Name = *spec.Name
		}
		return execute(cmd, "admin.file.create", in.Name, func(ctx context.Context, b *backend) (any, error) {
			out, err := b.fileUseCase().Create(ctx, in)
			if err != nil {
				return nil, err
			}
			return out.File, nil
		})
	}), &createFile, "file"))

	var updateFile string
	c.AddCommand(withSpecFlag(leaf("update <id>", "Update a file (merge from spec)", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		var spec fileSpec
		if err := readSpec(cmd, updateFile, &spec); err != nil {
			return err
		}
		content, err := spec.content()
		if err != nil {
			return err
		}
		in := &file.UpdateInput{FileID: args[0], Name: spec.Name, Content: content}
		return execute(cmd, "admin.file.update", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.fileUseCase().Update(ctx, in)
			if err != nil {
				return nil, err
			}
			return out.File, nil
		})
	}), &updateFile, "file"))

	c.AddCommand(leaf("delete <id>", "Delete a file", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.file.delete", args[0], func(ctx context.Context, b *backend) (any, error) {
			if _, err := b.fileUseCase().Delete(ctx, &file.DeleteInput{FileID: args[0]}); err != nil {
				return nil, err
			}
			return deleted{Deleted: args[0]}, nil
		})
	}))

	c.AddCommand(leaf("usage <projectId>", "Show which apps mount each file of a project", cobra.ExactArgs(1), func(cmd *cobra.Command, args []string) error {
		return execute(cmd, "admin.file.usage", args[0], func(ctx context.Context, b *backend) (any, error) {
			out, err := b.fileUseCase().Usage(ctx, &file.UsageInput{ProjectID: args[0]})
			if err != nil {
				return nil, err
			}
			return out.Usage, nil
		})
	}))
	return c
}
