package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TopiaNetwork/signer/identity"
	"github.com/TopiaNetwork/signer/seed"
)

const identityCmdDes = "Manage identities: list, create, rename, delete."

func identityListCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the identities.",
		Args:  cobra.NoArgs,
		RunE: runWithApp(configFile, func(cmd *cobra.Command, a *app, args []string) error {
			out := cmd.OutOrStdout()
			for i, id := range a.manager.Identities() {
				keys, err := a.manager.NetworkKeys(id.Name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s\taccounts=%d\tnetworks=%d\n", identity.IdentityName(id, i), id.Meta.Len(), len(keys))
			}
			return nil
		}),
	}
}

func identityCreateCmd(configFile *string) *cobra.Command {
	var restore bool
	var words int

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Creates an identity from a new or an existing seed phrase.",
		Long: `Creates an identity. Without --restore a new seed phrase is generated and
printed once; write it down. With --restore the phrase is read from the input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWithApp(configFile, func(cmd *cobra.Command, a *app, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}

			p := newPrompter(cmd)
			var phrase string
			var err error
			if restore {
				phrase, err = p.secret("Seed phrase")
			} else {
				if !cmd.Flags().Changed("words") {
					words = a.config.WalletConfig.PhraseWords
				}
				phrase, err = seed.GeneratePhrase(words)
			}
			if err != nil {
				return err
			}

			pin, err := p.pin()
			if err != nil {
				return err
			}
			defer clear(pin)

			id, err := a.manager.CreateIdentity(name, phrase, pin)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", id.Name)
			if !restore {
				fmt.Fprintf(cmd.OutOrStdout(), "seed phrase: %s\n", phrase)
			}
			return nil
		}),
	}
	cmd.Flags().BoolVar(&restore, "restore", false, "read an existing seed phrase instead of generating one")
	cmd.Flags().IntVar(&words, "words", 24, "number of words of a generated seed phrase")
	return cmd
}

func identityRenameCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <identity> <new-name>",
		Short: "Renames an identity.",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(configFile, func(cmd *cobra.Command, a *app, args []string) error {
			return a.manager.RenameIdentity(args[0], args[1])
		}),
	}
}

func identityDeleteCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <identity>",
		Short: "Deletes an identity and its seed. Asks for the PIN.",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(configFile, func(cmd *cobra.Command, a *app, args []string) error {
			pin, err := newPrompter(cmd).pin()
			if err != nil {
				return err
			}
			defer clear(pin)
			return a.manager.DeleteIdentity(args[0], pin)
		}),
	}
}

func IdentityCmd(configFile *string) *cobra.Command {
	identityCmd := &cobra.Command{
		Use:   "identity",
		Short: identityCmdDes,
		Long:  identityCmdDes,
	}
	identityCmd.AddCommand(
		identityListCmd(configFile),
		identityCreateCmd(configFile),
		identityRenameCmd(configFile),
		identityDeleteCmd(configFile),
	)
	return identityCmd
}
