package seed

// Manager holds the BIP-39 seed of the faucet signing account.
type Manager interface {
	// Initialize validates the mnemonic and derives the seed from it and the
	// optional BIP-39 passphrase.
	Initialize(mnemonic string, passphrase string) error

	// GetSeed returns a copy of the seed, nil before Initialize.
	GetSeed() []byte

	IsInitialized() bool

	// Clear zeroes the seed.
	Clear()
}
