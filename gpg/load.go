package gpg

import (
	"bytes"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Record is a key record of one of the supported backends
type Record interface {
	BackendARecord | BackendBRecord
}

// ParseRecords decodes a list of backend key records from YAML or JSON
func ParseRecords[T Record](data []byte) ([]T, error) {
	var list []T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&list); err != nil {
		return nil, errors.WithMessage(err, "unable to decode records")
	}
	return list, nil
}

// LoadRecords reads a list of backend key records from the file
func LoadRecords[T Record](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return ParseRecords[T](data)
}

// KeysFromMonkeysign creates keys from monkeysign records, in the same order
func KeysFromMonkeysign(records []BackendARecord) ([]Key, error) {
	keys := make([]Key, 0, len(records))
	for _, r := range records {
		k, err := KeyFromMonkeysign(r)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// KeysFromGPGME creates keys from gpgme records, in the same order
func KeysFromGPGME(records []BackendBRecord) ([]Key, error) {
	keys := make([]Key, 0, len(records))
	for _, r := range records {
		k, err := KeyFromGPGME(r)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}
