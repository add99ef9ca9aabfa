package cmd

import (
	"fmt"

	"agw-agent/internal/pkg/config"
	"agw-agent/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var secretsCmd = &cobra.Command{
	Use:   "secrets",
	Short: "Fetch the gateway's bootstrap secrets for orchestrator registration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		logging.InitLogger(cfg.Logging)

		result, err := newAgent(cfg).GetSecrets(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("hardware-id: %s\nchallenge-key: %s\n", result.HardwareID, result.ChallengeKey)
		return nil
	},
}

func init() {
	secretsCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	if err := secretsCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(secretsCmd)
}
