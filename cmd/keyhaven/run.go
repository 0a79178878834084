package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run -- COMMAND [ARGS...]",
	Short: "Run a command with the environment's secrets injected",
	Long: `Run exports the target environment's secrets and executes COMMAND with
them added to its environment, without touching the parent process.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		project, environment, err := resolveTarget(cfg)
		if err != nil {
			return err
		}

		values, err := client.ExportMap(cmd.Context(), project, environment)
		if err != nil {
			return err
		}

		child := exec.CommandContext(cmd.Context(), args[0], args[1:]...)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		child.Env = os.Environ()
		for key, value := range values {
			child.Env = append(child.Env, fmt.Sprintf("%s=%s", key, value))
		}
		return child.Run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
