package main

import (
	"github.com/aretw0/crossroads/internal/cli"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the tree as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart (graph TD) of the selected tree with yes/no edge labels.
With --path the given answers are walked from the root and highlighted.`,
	Example: `  crossroads graph --tree car --path yes,no`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		answers, _ := cmd.Flags().GetStringSlice("path")
		return cli.Graph(cmd.Context(), cmd.OutOrStdout(), treeSource(cmd), answers)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.Flags().StringSlice("path", nil, "Answers to highlight, e.g. yes,no,y")
}
