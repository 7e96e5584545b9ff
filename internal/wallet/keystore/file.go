package keystore

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// ReadFile loads a keystore from path.
func ReadFile(path string) (*JSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read keystore %s", path)
	}

	var ks JSON
	if err := json.Unmarshal(data, &ks); err != nil {
		return nil, errors.Wrapf(err, "failed to parse keystore %s", path)
	}

	return &ks, nil
}

// WriteFile stores ks at path, readable by the owner only. An existing file
// is never overwritten.
func WriteFile(path string, ks *JSON) error {
	data, err := json.MarshalIndent(ks, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal keystore")
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return errors.Wrap(ErrExists, path)
		}
		return errors.Wrapf(err, "failed to create keystore %s", path)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		_ = f.Close()
		return errors.Wrapf(err, "failed to write keystore %s", path)
	}

	return errors.Wrapf(f.Close(), "failed to close keystore %s", path)
}

// Open reads the keystore at path and decrypts its mnemonic.
func Open(path string, password string) (string, error) {
	ks, err := ReadFile(path)
	if err != nil {
		return "", err
	}

	mnemonic, err := Decrypt(ks, password)
	if err != nil {
		return "", errors.Wrapf(err, "failed to decrypt keystore %s", path)
	}

	return mnemonic, nil
}
