package main

import "github.com/spf13/cobra"

// newCmdAdmin returns the parent command for admin operations.
func newCmdAdmin() *cobra.Command {
	c := group("admin", "Administrative commands (direct CRUD without auth)")
	addOutputFlag(c)
	c.AddCommand(newCmdAdminProject())
	c.AddCommand(newCmdAdminApp())
	c.AddCommand(newCmdAdminAppChart())
	c.AddCommand(newCmdAdminDomain())
	c.AddCommand(newCmdAdminMasterDomain())
	c.AddCommand(newCmdAdminFile())
	c.AddCommand(newCmdAdminRegistry())
	c.AddCommand(newCmdAdminDeployHook())
	c.AddCommand(newCmdAdminUser())
	return c
}

func addOutputFlag(c *cobra.Command) {
	c.PersistentFlags().StringP("output", "o", "json", "Output format (json|yaml)")
}
