package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yigit/uniadmin/internal/app/catalog"
)

var templatesCmd = &cobra.Command{
	Use:   "templates [label]",
	Short: "List the SQL templates, or print one",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			sql, ok := catalog.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown template %q", args[0])
			}
			fmt.Fprintln(out, sql)
			return nil
		}

		for _, label := range catalog.Labels() {
			fmt.Fprintln(out, label)
		}
		return nil
	},
}
