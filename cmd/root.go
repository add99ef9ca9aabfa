package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "agw-agent",
	Short: "agw-agent manages the lifecycle of an access gateway host",
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
