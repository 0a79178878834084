package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var flagOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render an environment's secrets as .env file content",
	Long: `Export fetches every secret of the target environment and renders it
as .env file content, written to stdout or to --output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		project, environment, err := resolveTarget(cfg)
		if err != nil {
			return err
		}

		content, err := client.EnvFileContent(cmd.Context(), project, environment)
		if err != nil {
			return err
		}

		if flagOutput == "" {
			fmt.Print(content)
			return nil
		}
		if err := os.WriteFile(flagOutput, []byte(content), 0o600); err != nil {
			return fmt.Errorf("write %s: %w", flagOutput, err)
		}
		fmt.Fprintf(os.Stderr, "wrote %s\n", flagOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}
