package keystore

import (
	"github.com/spf13/cobra"
	"github/chapool/nft-faucet/internal/config"
	"github/chapool/nft-faucet/internal/util/command"
	"github/chapool/nft-faucet/internal/wallet/address"
)

const (
	fileFlag  = "file"
	pathFlag  = "path"
	lightFlag = "light"

	defaultKeystoreFile = "faucet-keystore.json"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("keystore",
		newNew(),
		newEncrypt(),
		newAddress(),
	)
}

// addFileFlags registers the flags shared by all keystore subcommands, defaulting
// to the signer configured through ENV.
func addFileFlags(cmd *cobra.Command) {
	cfg := config.DefaultServiceConfigFromEnv().Signer

	file := cfg.KeystoreFile
	if file == "" {
		file = defaultKeystoreFile
	}
	path := cfg.DerivationPath
	if path == "" {
		path = address.DefaultPath
	}

	cmd.Flags().StringP(fileFlag, "f", file, "Keystore file")
	cmd.Flags().String(pathFlag, path, "BIP-44 derivation path of the faucet account")
}

func fileAndPath(cmd *cobra.Command) (string, string, error) {
	file, err := cmd.Flags().GetString(fileFlag)
	if err != nil {
		return "", "", err
	}
	path, err := cmd.Flags().GetString(pathFlag)
	if err != nil {
		return "", "", err
	}

	return file, path, nil
}
