package gpg

import (
	"bytes"
	"os"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/keysign/metricskey"
	"github.com/effective-security/xlog"
	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/keysign", "gpg")

var (
	armorBegin = []byte("-----BEGIN PGP ")
	armorEnd   = []byte("-----END PGP ")
	armorDash  = []byte("-----")
)

// KeyRing reads openpgp.EntityList from the given data,
// which may be a binary keyring or a sequence of armored blocks.
func KeyRing(data []byte) (openpgp.EntityList, error) {
	if !bytes.Contains(data, armorBegin) {
		defer metricskey.PerfKeyRingLoad.MeasureSince(time.Now(), "binary")
		el, err := openpgp.ReadKeyRing(bytes.NewReader(data))
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return el, nil
	}

	defer metricskey.PerfKeyRingLoad.MeasureSince(time.Now(), "armor")

	keyring := make(openpgp.EntityList, 0)
	for {
		block, rest, err := decodeArmor(data)
		if err != nil {
			return nil, err
		}
		if block == nil {
			logger.KV(xlog.TRACE, "reason", "no_block", "size", len(data))
			break
		}

		if block.Type == openpgp.PublicKeyType || block.Type == openpgp.PrivateKeyType {
			// extract keys
			el, err := openpgp.ReadKeyRing(block.Body)
			if err != nil {
				return nil, errors.WithStack(err)
			}
			// append keyring
			keyring = append(keyring, el...)
		} else {
			logger.KV(xlog.DEBUG, "reason", "skip_block", "type", block.Type)
		}
		if len(rest) == 0 {
			break
		}
		data = rest
	}

	return keyring, nil
}

// decodeArmor returns the first armored block in data and the remaining bytes
func decodeArmor(data []byte) (*armor.Block, []byte, error) {
	start := bytes.Index(data, armorBegin)
	if start < 0 {
		return nil, nil, nil
	}
	end := bytes.Index(data[start:], armorEnd)
	if end < 0 {
		return nil, nil, errors.New("armored block is not terminated")
	}
	end += start + len(armorEnd)
	tail := bytes.Index(data[end:], armorDash)
	if tail < 0 {
		return nil, nil, errors.New("armored block is not terminated")
	}
	end += tail + len(armorDash)

	block, err := armor.Decode(bytes.NewReader(data[start:end]))
	if err != nil {
		return nil, nil, errors.WithStack(err)
	}
	return block, data[end:], nil
}

// KeyRingFromFile reads openpgp.EntityList from the given file path
func KeyRingFromFile(path string) (openpgp.EntityList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	k, err := KeyRing(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "unable to read keyring %s", path)
	}

	return k, nil
}

// KeyRingFromFiles reads openpgp.EntityList from the given file paths.
//
// This function might typically be used to read all keys exported
// from a local keyring, one file per key.
func KeyRingFromFiles(files []string) (openpgp.EntityList, error) {
	keyring := make(openpgp.EntityList, 0)
	for _, path := range files {
		// read keyring in file
		el, err := KeyRingFromFile(path)
		if err != nil {
			return nil, err
		}

		// append keyring
		keyring = append(keyring, el...)
	}

	return keyring, nil
}
