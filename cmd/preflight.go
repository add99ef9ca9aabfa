package cmd

import (
	"fmt"
	"time"

	"agw-agent/internal/pkg/config"
	"agw-agent/internal/pkg/logging"

	"github.com/spf13/cobra"
)

var probeTimeoutFlag time.Duration

var preflightCmd = &cobra.Command{
	Use:   "preflight",
	Short: "Verify a DHCP server answers on the SGI interface before installing",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		logging.InitLogger(cfg.Logging)

		message, err := newAgent(cfg).PreflightDHCP(cmd.Context(), probeTimeoutFlag)
		if err != nil {
			return err
		}
		fmt.Println(message)
		return nil
	},
}

func init() {
	preflightCmd.Flags().StringVarP(&configFlag, "config", "f", "", "Path to config file (YAML)")
	preflightCmd.Flags().DurationVar(&probeTimeoutFlag, "timeout", 10*time.Second, "DHCP probe timeout")
	if err := preflightCmd.MarkFlagRequired("config"); err != nil {
		panic(err) // This should never happen during initialization
	}
	rootCmd.AddCommand(preflightCmd)
}
