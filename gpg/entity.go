package gpg

import (
	"encoding/hex"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/packet"
)

// RecordFromEntity returns gpgme shaped record for the OpenPGP entity.
//
// The primary key is reported as the first subkey.
// The primary identity is reported first, the other identities
// are ordered by user ID, as the keyring does not preserve their order.
// ErrInvalidKeyRecord is returned if the entity has no primary key.
func RecordFromEntity(e *openpgp.Entity) (BackendBRecord, error) {
	if e == nil || e.PrimaryKey == nil {
		return BackendBRecord{}, errors.Wrap(ErrInvalidKeyRecord, "entity has no primary key")
	}
	idents := identities(e)

	r := BackendBRecord{
		Fpr:     strings.ToUpper(hex.EncodeToString(e.PrimaryKey.Fingerprint[:])),
		Subkeys: make([]BackendBSubkey, 0, len(e.Subkeys)+1),
		UIDs:    make([]BackendBUID, 0, len(idents)),
	}

	var primarySig *packet.Signature
	if len(idents) > 0 {
		primarySig = idents[0].SelfSignature
	}
	r.Subkeys = append(r.Subkeys, BackendBSubkey{
		Expires: expiresAt(e.PrimaryKey.CreationTime, primarySig),
	})
	for _, sub := range e.Subkeys {
		if sub.PublicKey == nil {
			return BackendBRecord{}, errors.Wrapf(ErrInvalidKeyRecord, "key %s: subkey has no public key", r.Fpr)
		}
		r.Subkeys = append(r.Subkeys, BackendBSubkey{
			Expires: expiresAt(sub.PublicKey.CreationTime, sub.Sig),
		})
	}

	for _, ident := range idents {
		r.UIDs = append(r.UIDs, BackendBUID{
			Name:  ident.UserId.Name,
			Email: ident.UserId.Email,
		})
	}
	return r, nil
}

// KeyFromEntity creates Key from the OpenPGP entity
func KeyFromEntity(e *openpgp.Entity) (Key, error) {
	r, err := RecordFromEntity(e)
	if err != nil {
		return Key{}, err
	}
	return KeyFromGPGME(r)
}

// KeysFromEntities creates keys from the OpenPGP entities, in the keyring order
func KeysFromEntities(el openpgp.EntityList) ([]Key, error) {
	keys := make([]Key, 0, len(el))
	for _, e := range el {
		k, err := KeyFromEntity(e)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func identities(e *openpgp.Entity) []*openpgp.Identity {
	list := make([]*openpgp.Identity, 0, len(e.Identities))
	for _, ident := range e.Identities {
		if ident.UserId != nil {
			list = append(list, ident)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		pi, pj := isPrimary(list[i]), isPrimary(list[j])
		if pi != pj {
			return pi
		}
		return list[i].Name < list[j].Name
	})
	return list
}

func isPrimary(ident *openpgp.Identity) bool {
	sig := ident.SelfSignature
	return sig != nil && sig.IsPrimaryId != nil && *sig.IsPrimaryId
}

// expiresAt returns the epoch of expiration, or 0 if the key does not expire
func expiresAt(created time.Time, sig *packet.Signature) int64 {
	if sig == nil || sig.KeyLifetimeSecs == nil || *sig.KeyLifetimeSecs == 0 {
		return 0
	}
	return created.Add(time.Duration(*sig.KeyLifetimeSecs) * time.Second).Unix()
}
