package main

import (
	"fmt"

	"github.com/aretw0/crossroads/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the tree for consistency",
	Long:  `Builds the selected tree and reports broken edges, unreachable nodes, cycles and unknown placeholders.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.Validate(cmd.Context(), cmd.OutOrStdout(), treeSource(cmd)); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Tree is valid! ✅")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
