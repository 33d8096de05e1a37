/*
Copyright © 2025 nextute
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chatbot-be",
	Short: "Backend for the Nextute support chatbot",
	Long: `Backend for the Nextute support chatbot.

Serves the chat API over an in-memory knowledge base built from the current
institute records plus static editorial content. See the start and
refresh-knowledge subcommands.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
}
