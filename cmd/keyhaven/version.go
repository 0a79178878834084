package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/keyhaven/keyhaven-go/pkg/version"
)

// versionCmd prints detailed build information; `--version` prints the
// short form.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Info()
		fmt.Printf("keyhaven version: %s\n", info["version"])
		fmt.Printf("  build date: %s\n", info["buildDate"])
		fmt.Printf("  git commit: %s\n", info["gitCommit"])
		fmt.Printf("  go version: %s\n", info["goVersion"])
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
