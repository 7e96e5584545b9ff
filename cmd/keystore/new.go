package keystore

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/nft-faucet/internal/wallet"
	ks "github/chapool/nft-faucet/internal/wallet/keystore"
	"github/chapool/nft-faucet/internal/wallet/seed"
)

const (
	wordsFlag        = "words"
	showMnemonicFlag = "show-mnemonic"
)

func newNew() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Creates a keystore with a fresh mnemonic",
		Long: `Generates a new BIP-39 mnemonic, encrypts it with a password and writes
it to a keystore file. The faucet account address is printed and must be funded.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, path, err := fileAndPath(cmd)
			if err != nil {
				return err
			}
			words, err := cmd.Flags().GetInt(wordsFlag)
			if err != nil {
				return err
			}
			show, err := cmd.Flags().GetBool(showMnemonicFlag)
			if err != nil {
				return err
			}
			light, err := cmd.Flags().GetBool(lightFlag)
			if err != nil {
				return err
			}

			var bitSize int
			switch words {
			case 12:
				bitSize = 128
			case 24:
				bitSize = 256
			default:
				return errors.Errorf("unsupported mnemonic length %d, use 12 or 24", words)
			}

			mnemonic, err := seed.NewMnemonic(bitSize)
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

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Keystore written to %s\n", file)
			fmt.Fprintf(out, "Faucet address: %s\n", addr.Hex())
			if show {
				fmt.Fprintf(out, "Mnemonic: %s\n", mnemonic)
			}

			return nil
		},
	}

	addFileFlags(cmd)
	cmd.Flags().Int(wordsFlag, 24, "Number of mnemonic words (12 or 24)")
	cmd.Flags().Bool(showMnemonicFlag, false, "Print the generated mnemonic for an offline backup")
	cmd.Flags().Bool(lightFlag, false, "Use light scrypt parameters")

	return cmd
}

func scryptParams(light bool) ks.ScryptParams {
	if light {
		return ks.LightScryptParams()
	}
	return ks.StandardScryptParams()
}
