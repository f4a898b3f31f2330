package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TopiaNetwork/signer/networkspec"
)

const networkCmdDes = "Inspect the known networks."

func printSpec(cmd *cobra.Command, spec networkspec.NetworkSpec) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\tprefix=%d\n", spec.NetworkKey, spec.Protocol, spec.PathID, spec.Title, spec.Prefix)
}

func networkListCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the networks of the registry.",
		Args:  cobra.NoArgs,
		RunE: runWithApp(configFile, func(cmd *cobra.Command, a *app, args []string) error {
			for _, spec := range a.manager.Registry().Specs() {
				printSpec(cmd, spec)
			}
			return nil
		}),
	}
}

func networkKeysCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "keys <identity>",
		Short: "Lists the networks an identity has accounts on.",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(configFile, func(cmd *cobra.Command, a *app, args []string) error {
			keys, err := a.manager.NetworkKeys(args[0])
			if err != nil {
				return err
			}
			for _, key := range keys {
				spec, ok := a.manager.Registry().Get(key)
				if !ok {
					spec = a.manager.Registry().Unknown()
				}
				printSpec(cmd, spec)
			}
			return nil
		}),
	}
}

func NetworkCmd(configFile *string) *cobra.Command {
	networkCmd := &cobra.Command{
		Use:   "network",
		Short: networkCmdDes,
		Long:  networkCmdDes,
	}
	networkCmd.AddCommand(networkListCmd(configFile), networkKeysCmd(configFile))
	return networkCmd
}
