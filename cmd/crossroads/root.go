package main

import (
	"fmt"
	"os"

	"github.com/aretw0/crossroads/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crossroads",
	Short: "Crossroads walks yes/no decision trees",
	Long: `Crossroads asks one yes/no question at a time and follows your answers
down a binary decision tree until it reaches a conclusion.

Trees come from the built-in catalog (--tree), a YAML or HCL file (--file)
or a directory of Markdown node documents (--dir).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("tree", "", "Name of a built-in tree (see 'crossroads list')")
	rootCmd.PersistentFlags().String("file", "", "YAML or HCL tree document (.hcl selects HCL)")
	rootCmd.PersistentFlags().String("dir", "", "Directory containing Markdown node documents")
}

// treeSource reads the persistent source flags.
func treeSource(cmd *cobra.Command) cli.TreeSource {
	name, _ := cmd.Flags().GetString("tree")
	file, _ := cmd.Flags().GetString("file")
	dir, _ := cmd.Flags().GetString("dir")
	return cli.TreeSource{Name: name, File: file, Dir: dir}
}
