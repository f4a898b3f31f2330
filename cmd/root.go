package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd builds the signer command tree. Every call returns a fresh tree.
func RootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "signer",
		Short:         "Offline identity and account manager.",
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "JSON configuration file")

	rootCmd.AddCommand(
		IdentityCmd(&configFile),
		AccountCmd(&configFile),
		NetworkCmd(&configFile),
	)
	return rootCmd
}
