package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	yamlv3 "gopkg.in/yaml.v3"
	"sigs.k8s.io/yaml"
)

// findFlag recursively searches parents for a flag.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

func outputFormat(cmd *cobra.Command) string {
	if f := findFlag(cmd, "output"); f != nil {
		return f.Value.String()
	}
	return "json"
}

// printOutput writes v as indented JSON or, with -o yaml, as YAML derived from
// the JSON field names.
func printOutput(cmd *cobra.Command, v any) error {
	switch format := outputFormat(cmd); format {
	case "", "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(b)
		return err
	default:
		return fmt.Errorf("unsupported output format %q (json|yaml)", format)
	}
}

// printYAMLv3 writes v using its yaml struct tags.
func printYAMLv3(cmd *cobra.Command, v any) error {
	enc := yamlv3.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// readSpec decodes a YAML spec file, or stdin when path is "-", into v.
func readSpec(cmd *cobra.Command, path string, v any) error {
	if path == "" {
		return errors.New("spec file required (-f)")
	}
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if err := yamlv3.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse spec %s: %w", path, err)
	}
	return nil
}
