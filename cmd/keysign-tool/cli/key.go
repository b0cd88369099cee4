package cli

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/keysign/gpg"
	"github.com/effective-security/keysign/x/print"
	"github.com/effective-security/xlog"
)

// KeyCmd provides key commands
type KeyCmd struct {
	List   KeyListCmd   `cmd:"" help:"print keys from OpenPGP keyring files"`
	Import KeyImportCmd `cmd:"" help:"print keys from monkeysign or gpgme record dumps"`
}

// KeyListCmd specifies flags for KeyList action
type KeyListCmd struct {
	Keyring     []string `kong:"arg" required:"" help:"armored or binary keyring file names, - for stdin"`
	Fingerprint string   `help:"optional, print only the key with the fingerprint"`
	NoExpired   *bool    `help:"optional, filter non-expired keys"`
	JSON        bool     `name:"json" help:"print keys as JSON"`
}

// Run the command
func (a *KeyListCmd) Run(ctx *Cli) error {
	var keys []gpg.Key
	for _, file := range a.Keyring {
		data, err := ctx.ReadFile(file)
		if err != nil {
			return errors.WithMessage(err, "unable to load keyring")
		}
		el, err := gpg.KeyRing(data)
		if err != nil {
			return errors.WithMessagef(err, "unable to parse keyring %s", file)
		}
		list, err := gpg.KeysFromEntities(el)
		if err != nil {
			return errors.WithMessagef(err, "unable to convert keyring %s", file)
		}
		logger.KV(xlog.DEBUG, "keyring", file, "keys", len(list))
		keys = append(keys, list...)
	}

	keys = filterKeys(keys, a.Fingerprint, a.NoExpired != nil && *a.NoExpired, time.Now())
	return writeKeys(ctx, keys, a.JSON)
}

// KeyImportCmd specifies flags for KeyImport action
type KeyImportCmd struct {
	In          string `kong:"arg" required:"" help:"YAML or JSON file with a list of key records, - for stdin"`
	Backend     string `help:"backend that produced the records" enum:"monkeysign,gpgme" default:"gpgme"`
	Fingerprint string `help:"optional, print only the key with the fingerprint"`
	NoExpired   *bool  `help:"optional, filter non-expired keys"`
	JSON        bool   `name:"json" help:"print keys as JSON"`
}

// Run the command
func (a *KeyImportCmd) Run(ctx *Cli) error {
	data, err := ctx.ReadFile(a.In)
	if err != nil {
		return errors.WithMessage(err, "unable to load records")
	}

	var keys []gpg.Key
	switch a.Backend {
	case "monkeysign":
		records, err := gpg.ParseRecords[gpg.BackendARecord](data)
		if err != nil {
			return err
		}
		keys, err = gpg.KeysFromMonkeysign(records)
		if err != nil {
			return errors.WithMessage(err, "unable to convert monkeysign records")
		}
	case "gpgme":
		records, err := gpg.ParseRecords[gpg.BackendBRecord](data)
		if err != nil {
			return err
		}
		keys, err = gpg.KeysFromGPGME(records)
		if err != nil {
			return errors.WithMessage(err, "unable to convert gpgme records")
		}
	default:
		return errors.Errorf("unsupported backend: %s", a.Backend)
	}
	logger.KV(xlog.DEBUG, "backend", a.Backend, "keys", len(keys))

	keys = filterKeys(keys, a.Fingerprint, a.NoExpired != nil && *a.NoExpired, time.Now())
	return writeKeys(ctx, keys, a.JSON)
}

func filterKeys(list []gpg.Key, fingerprint string, noExpired bool, now time.Time) []gpg.Key {
	filtered := make([]gpg.Key, 0, len(list))
	for _, k := range list {
		if fingerprint != "" && k.Fingerprint() != fingerprint {
			continue
		}
		if noExpired && k.IsExpired(now) {
			continue
		}
		filtered = append(filtered, k)
	}
	return filtered
}

func writeKeys(ctx *Cli, keys []gpg.Key, asJSON bool) error {
	if asJSON {
		return ctx.WriteJSON(keys)
	}
	print.Keys(ctx.Writer(), keys)
	return nil
}
