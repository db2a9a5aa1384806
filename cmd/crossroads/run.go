package main

import (
	"github.com/aretw0/crossroads/internal/cli"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Walk a decision tree interactively",
	Long: `Starts a session at the root of the selected tree. Answer each question
with yes/y or no/n; the session ends when a conclusion is shown.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		headless, _ := cmd.Flags().GetBool("headless")
		jsonMode, _ := cmd.Flags().GetBool("json")
		debug, _ := cmd.Flags().GetBool("debug")
		noBanner, _ := cmd.Flags().GetBool("no-banner")
		metricsFile, _ := cmd.Flags().GetString("metrics-file")

		return cli.RunSession(cmd.Context(), cli.RunOptions{
			Source:      treeSource(cmd),
			Headless:    headless,
			JSON:        jsonMode,
			Debug:       debug,
			NoBanner:    noBanner,
			MetricsFile: metricsFile,
			Stdin:       cmd.InOrStdin(),
			Stdout:      cmd.OutOrStdout(),
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	for _, cmd := range []*cobra.Command{runCmd, rootCmd} {
		cmd.Flags().Bool("headless", false, "Run in headless mode (no banner, no system messages)")
		cmd.Flags().Bool("json", false, "Run in JSON mode (NDJSON input/output)")
		cmd.Flags().Bool("debug", false, "Log node transitions to stderr")
		cmd.Flags().Bool("no-banner", false, "Do not print the banner")
		cmd.Flags().String("metrics-file", "", "Write session metrics to this Prometheus textfile")
	}

	// A bare 'crossroads' runs a session.
	rootCmd.RunE = runCmd.RunE
}
