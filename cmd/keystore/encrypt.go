package keystore

import (
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/nft-faucet/internal/wallet"
)

func newEncrypt() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypts an existing mnemonic into a keystore",
		Long:  "Reads a BIP-39 mnemonic from the terminal without echoing it and encrypts it into a keystore file.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, path, err := fileAndPath(cmd)
			if err != nil {
				return err
			}
			light, err := cmd.Flags().GetBool(lightFlag)
			if err != nil {
				return err
			}

			mnemonic, err := wallet.PromptPassword("Enter mnemonic: ")
			if err != nil {
				return err
			}

			password, err := wallet.PromptNewPassword(wallet.PromptPassword)
			if err != nil {
				return err
			}

			addr, err := wallet.CreateKeystore(file, mnemonic, password, path, scryptParams(light))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Keystore written to %s\nFaucet address: %s\n", file, addr.Hex())

			return nil
		},
	}

	addFileFlags(cmd)
	cmd.Flags().Bool(lightFlag, false, "Use light scrypt parameters")

	return cmd
}
