package keystore

import (
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/nft-faucet/internal/config"
	"github/chapool/nft-faucet/internal/wallet"
	ks "github/chapool/nft-faucet/internal/wallet/keystore"
)

const verifyFlag = "verify"

func newAddress() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Prints the faucet address of a keystore",
		Long: `Prints the address recorded in a keystore file. With --verify the keystore
is unlocked and the address is derived from the decrypted mnemonic.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, path, err := fileAndPath(cmd)
			if err != nil {
				return err
			}
			verify, err := cmd.Flags().GetBool(verifyFlag)
			if err != nil {
				return err
			}

			if !verify {
				keystore, err := ks.ReadFile(file)
				if err != nil {
					return err
				}
				if keystore.Address == "" {
					return errors.Errorf("keystore %s records no address, use --%s", file, verifyFlag)
				}

				fmt.Fprintln(cmd.OutOrStdout(), keystore.Address)
				return nil
			}

			key, err := wallet.LoadSigningKey(config.Signer{
				KeystoreFile:   file,
				DerivationPath: path,
			}, wallet.PromptPassword)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), crypto.PubkeyToAddress(key.PublicKey).Hex())

			return nil
		},
	}

	addFileFlags(cmd)
	cmd.Flags().Bool(verifyFlag, false, "Unlock the keystore and derive the address")

	return cmd
}
