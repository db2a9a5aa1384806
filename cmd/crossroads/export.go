package main

import (
	"fmt"

	"github.com/aretw0/crossroads/internal/cli"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the tree as YAML/HCL or write it as Markdown node documents",
	Long: `Without --out the selected tree is printed in --format (yaml or hcl) for --file.
With --out it is written into that directory as Markdown node documents for --dir.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			format, _ := cmd.Flags().GetString("format")
			return cli.Export(cmd.Context(), cmd.OutOrStdout(), treeSource(cmd), format)
		}
		if err := cli.ExportDir(cmd.Context(), treeSource(cmd), out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Tree written to %s\n", out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("out", "", "Directory to write Markdown node documents into")
	exportCmd.Flags().String("format", "yaml", "Output format without --out: yaml or hcl")
}
