package cmd

import (
	"fmt"

	"agw-agent/internal/pkg/config"
	"agw-agent/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var postinstallCmd = &cobra.Command{
	Use:   "postinstall",
	Short: "Run the gateway's post-installation checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		logging.InitLogger(cfg.Logging)

		message, err := newAgent(cfg).PostInstallChecks(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil
	},
}

func init() {
	postinstallCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	if err := postinstallCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(postinstallCmd)
}
