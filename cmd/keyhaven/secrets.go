package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List secret keys in an environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		project, environment, err := resolveTarget(cfg)
		if err != nil {
			return err
		}

		secrets, err := client.ListSecrets(cmd.Context(), project, environment)
		if err != nil {
			return err
		}
		for _, secret := range secrets {
			fmt.Printf("%s\tv%d\n", secret.Key, secret.Version)
		}
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a secret's value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		project, environment, err := resolveTarget(cfg)
		if err != nil {
			return err
		}

		secret, err := client.GetSecret(cmd.Context(), project, environment, args[0])
		if err != nil {
			return err
		}
		fmt.Println(secret.Value)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Create or update a secret",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		project, environment, err := resolveTarget(cfg)
		if err != nil {
			return err
		}

		secret, err := client.SetSecret(cmd.Context(), project, environment, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%s set (v%d)\n", secret.Key, secret.Version)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete KEY",
	Short: "Delete a secret",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		project, environment, err := resolveTarget(cfg)
		if err != nil {
			return err
		}

		if err := client.DeleteSecret(cmd.Context(), project, environment, args[0]); err != nil {
			return err
		}
		fmt.Printf("%s deleted\n", args[0])
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Bulk-import secrets from a .env file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		project, environment, err := resolveTarget(cfg)
		if err != nil {
			return err
		}

		result, err := client.ImportEnvFile(cmd.Context(), project, environment, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "imported %d secrets (%d created, %d updated)\n",
			result.Total, result.Created, result.Updated)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd, getCmd, setCmd, deleteCmd, importCmd)
}
