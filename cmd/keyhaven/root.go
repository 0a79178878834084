package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/keyhaven/keyhaven-go/pkg/config"
	"github.com/keyhaven/keyhaven-go/pkg/keyhaven"
	"github.com/keyhaven/keyhaven-go/pkg/logger"
	"github.com/keyhaven/keyhaven-go/pkg/version"
)

var (
	flagConfig  string
	flagToken   string
	flagProject string
	flagEnv     string
	flagVerbose bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "keyhaven",
	Short: "Keyhaven secrets manager CLI",
	Long: `keyhaven reads and writes secrets in the Keyhaven secrets manager.

Authentication uses a bearer token from --token, the KEYHAVEN_TOKEN
environment variable, or the config file (default $HOME/.keyhaven.yaml).`,
	Version:       version.FullString(),
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(flagVerbose)
	},
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $HOME/.keyhaven.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "API token (overrides KEYHAVEN_TOKEN)")
	rootCmd.PersistentFlags().StringVarP(&flagProject, "project", "p", "", "project id")
	rootCmd.PersistentFlags().StringVarP(&flagEnv, "env", "e", "", "environment name")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug output")
}

// newClient resolves token and endpoint from flags, environment and config
// file, and builds the SDK client.
func newClient() (*keyhaven.Client, cliConfig, error) {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return nil, cliConfig{}, err
	}

	token := flagToken
	if token == "" {
		token = config.GetEnv(config.EnvToken, cfg.Token)
	}
	if token == "" {
		return nil, cliConfig{}, errors.New("no API token: use --token, KEYHAVEN_TOKEN, or the config file")
	}

	opts := []keyhaven.Option{keyhaven.WithLogger(logger.L())}
	if cfg.APIURL != "" {
		opts = append(opts, keyhaven.WithBaseURL(cfg.APIURL))
	}
	if cfg.CacheTTL > 0 {
		opts = append(opts, keyhaven.WithCacheTTL(time.Duration(cfg.CacheTTL)*time.Second))
	}

	client, err := keyhaven.New(token, opts...)
	if err != nil {
		return nil, cliConfig{}, err
	}
	return client, cfg, nil
}

// resolveTarget merges the project/environment flags with config defaults.
func resolveTarget(cfg cliConfig) (string, string, error) {
	project := flagProject
	if project == "" {
		project = cfg.Project
	}
	environment := flagEnv
	if environment == "" {
		environment = cfg.Environment
	}
	if project == "" || environment == "" {
		return "", "", fmt.Errorf("project and environment are required (use --project/--env or the config file)")
	}
	return project, environment, nil
}
