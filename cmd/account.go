package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TopiaNetwork/signer/identity"
	"github.com/TopiaNetwork/signer/networkspec"
	"github.com/TopiaNetwork/signer/wallet"
)

const accountCmdDes = "Manage the accounts derived from an identity."

func accountListCmd(configFile *string) *cobra.Command {
	var networkKey string

	cmd := &cobra.Command{
		Use:   "list <identity>",
		Short: "Lists the accounts of an identity grouped per network.",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(configFile, func(cmd *cobra.Command, a *app, args []string) error {
			id, err := a.manager.Identity(args[0])
			if err != nil {
				return err
			}

			keys := []string{networkKey}
			if networkKey == "" {
				if keys, err = a.manager.NetworkKeys(args[0]); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			for _, key := range keys {
				groups, err := a.manager.PathGroups(args[0], key)
				if err != nil {
					return err
				}
				spec, _ := a.manager.Registry().Get(key)
				fmt.Fprintf(out, "%s\n", spec.Title)
				for _, group := range groups {
					fmt.Fprintf(out, "  %s\n", group.Title)
					for _, path := range group.Paths {
						address, _ := id.AddressOfPath(path)
						fmt.Fprintf(out, "    %s\t%s\t%s\n", path, identity.PathName(path, id), address)
					}
				}
			}
			return nil
		}),
	}
	cmd.Flags().StringVar(&networkKey, "network", "", "only list the accounts of this network key")
	return cmd
}

func accountDeriveCmd(configFile *string) *cobra.Command {
	var networkKey, name string
	var withPassword bool

	cmd := &cobra.Command{
		Use:   "derive <identity> <path>",
		Short: "Derives the account of a path on a substrate network.",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(configFile, func(cmd *cobra.Command, a *app, args []string) error {
			p := newPrompter(cmd)
			var password string
			if withPassword {
				var err error
				if password, err = p.secret("Derivation password"); err != nil {
					return err
				}
			}
			pin, err := p.pin()
			if err != nil {
				return err
			}
			defer clear(pin)

			address, err := a.manager.DeriveAccount(cmd.Context(), wallet.DeriveRequest{
				Identity:   args[0],
				Path:       args[1],
				NetworkKey: networkKey,
				Name:       name,
				Password:   password,
				Pin:        pin,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), address)
			return nil
		}),
	}
	cmd.Flags().StringVar(&networkKey, "network", networkspec.UnknownNetworkKey, "network key the account belongs to")
	cmd.Flags().StringVar(&name, "name", "", "account name")
	cmd.Flags().BoolVar(&withPassword, "password", false, "ask for a derivation password")
	return cmd
}

func accountDeriveDefaultCmd(configFile *string) *cobra.Command {
	var networkKey string

	cmd := &cobra.Command{
		Use:   "derive-default <identity>",
		Short: "Derives the default account of a substrate network.",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(configFile, func(cmd *cobra.Command, a *app, args []string) error {
			pin, err := newPrompter(cmd).pin()
			if err != nil {
				return err
			}
			defer clear(pin)

			address, err := a.manager.DeriveDefaultAccount(cmd.Context(), args[0], networkKey, pin)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), address)
			return nil
		}),
	}
	cmd.Flags().StringVar(&networkKey, "network", networkspec.KusamaNetworkKey, "network key")
	return cmd
}

func accountDeriveNextCmd(configFile *string) *cobra.Command {
	var networkKey string
	var soft bool

	cmd := &cobra.Command{
		Use:   "derive-next <identity> <group>",
		Short: "Derives the next indexed account of a group, e.g. //funding.",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(configFile, func(cmd *cobra.Command, a *app, args []string) error {
			pin, err := newPrompter(cmd).pin()
			if err != nil {
				return err
			}
			defer clear(pin)

			path, address, err := a.manager.DeriveNextInGroup(cmd.Context(), args[0], networkKey, args[1], !soft, pin)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", path, address)
			return nil
		}),
	}
	cmd.Flags().StringVar(&networkKey, "network", networkspec.KusamaNetworkKey, "network key")
	cmd.Flags().BoolVar(&soft, "soft", false, "use a soft index junction")
	return cmd
}

func accountDeriveEthereumCmd(configFile *string) *cobra.Command {
	var networkKey string

	cmd := &cobra.Command{
		Use:   "derive-eth <identity>",
		Short: "Records the Ethereum account of an identity on an Ethereum network.",
		Args:  cobra.ExactArgs(1),
		RunE: runWithApp(configFile, func(cmd *cobra.Command, a *app, args []string) error {
			pin, err := newPrompter(cmd).pin()
			if err != nil {
				return err
			}
			defer clear(pin)

			address, err := a.manager.DeriveEthereumAccount(cmd.Context(), args[0], networkKey, pin)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), address)
			return nil
		}),
	}
	cmd.Flags().StringVar(&networkKey, "network", networkspec.EthereumFrontierKey, "network key")
	return cmd
}

func accountRenameCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <identity> <path> <name>",
		Short: "Renames an account.",
		Args:  cobra.ExactArgs(3),
		RunE: runWithApp(configFile, func(cmd *cobra.Command, a *app, args []string) error {
			return a.manager.RenameAccount(args[0], args[1], args[2])
		}),
	}
}

func accountDeleteCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <identity> <path>",
		Short: "Forgets an account. It can be derived again from the seed.",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(configFile, func(cmd *cobra.Command, a *app, args []string) error {
			return a.manager.DeletePath(args[0], args[1])
		}),
	}
}

func accountQRCmd(configFile *string) *cobra.Command {
	var outFile string
	var size int

	cmd := &cobra.Command{
		Use:   "qr <identity> <path>",
		Short: "Prints the account id of a path, or writes it as a PNG QR code with --out.",
		Args:  cobra.ExactArgs(2),
		RunE: runWithApp(configFile, func(cmd *cobra.Command, a *app, args []string) error {
			accountID, err := a.manager.AccountID(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), accountID)
			if outFile == "" {
				return nil
			}

			png, err := a.manager.AccountQR(args[0], args[1], size)
			if err != nil {
				return err
			}
			return os.WriteFile(outFile, png, 0644)
		}),
	}
	cmd.Flags().StringVar(&outFile, "out", "", "PNG file to write")
	cmd.Flags().IntVar(&size, "size", wallet.DefaultQRSize, "QR code size in pixels")
	return cmd
}

func AccountCmd(configFile *string) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: accountCmdDes,
		Long:  accountCmdDes,
	}
	accountCmd.AddCommand(
		accountListCmd(configFile),
		accountDeriveCmd(configFile),
		accountDeriveDefaultCmd(configFile),
		accountDeriveNextCmd(configFile),
		accountDeriveEthereumCmd(configFile),
		accountRenameCmd(configFile),
		accountDeleteCmd(configFile),
		accountQRCmd(configFile),
	)
	return accountCmd
}
