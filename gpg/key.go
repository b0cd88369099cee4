package gpg

import (
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/keysign/metricskey"
	"github.com/effective-security/xlog"
)

// Key represents an OpenPGP key, to the extent we care about it.
//
// Key is immutable: the user IDs are copied on construction
// and on access.
type Key struct {
	expiry      time.Time
	fingerprint string
	uids        []UID
}

// NewKey returns Key with normalized expiry, see ParseExpiry.
// The fingerprint is used as is, but it must not be empty.
func NewKey(expiry any, fingerprint string, uids []UID) (Key, error) {
	if fingerprint == "" {
		return Key{}, errors.Wrap(ErrInvalidKeyRecord, "missing fingerprint")
	}
	exp, err := ParseExpiry(expiry)
	if err != nil {
		return Key{}, errors.WithMessagef(err, "key %s", fingerprint)
	}
	return Key{
		expiry:      exp,
		fingerprint: fingerprint,
		uids:        slices.Clone(uids),
	}, nil
}

// KeyFromMonkeysign creates Key from a monkeysign key record
func KeyFromMonkeysign(r BackendARecord) (Key, error) {
	defer metricskey.PerfKeyConversion.MeasureSince(time.Now(), "monkeysign", "key")

	uids := make([]UID, 0, len(r.UIDsList))
	for _, ru := range r.UIDsList {
		u, err := UIDFromMonkeysign(ru)
		if err != nil {
			return Key{}, errors.WithMessagef(err, "key %s", r.Fpr)
		}
		uids = append(uids, u)
	}

	return NewKey(r.Expiry, r.Fpr, uids)
}

// KeyFromGPGME creates Key from a gpgme key record.
// The expiry is taken from the primary key, which gpgme reports first.
func KeyFromGPGME(r BackendBRecord) (Key, error) {
	defer metricskey.PerfKeyConversion.MeasureSince(time.Now(), "gpgme", "key")

	if len(r.Subkeys) == 0 {
		logger.KV(xlog.DEBUG, "reason", "no_subkeys", "fpr", r.Fpr)
		return Key{}, errors.Wrapf(ErrInvalidKeyRecord, "key %s has no subkeys", r.Fpr)
	}

	uids := make([]UID, 0, len(r.UIDs))
	for _, ru := range r.UIDs {
		uids = append(uids, UIDFromGPGME(ru))
	}

	return NewKey(r.Subkeys[0].Expires, r.Fpr, uids)
}

// Fingerprint returns the fingerprint of the key
func (k Key) Fingerprint() string {
	return k.fingerprint
}

// Expiry returns the expiry time, and false if the key does not expire
func (k Key) Expiry() (time.Time, bool) {
	return k.expiry, !k.expiry.IsZero()
}

// IsExpired returns true if the key expires before or at the specified time
func (k Key) IsExpired(at time.Time) bool {
	return !k.expiry.IsZero() && !k.expiry.After(at)
}

// UIDs returns a copy of the user IDs, in the order reported by the backend
func (k Key) UIDs() []UID {
	return slices.Clone(k.uids)
}

// Equal reports whether both keys hold the same values
func (k Key) Equal(o Key) bool {
	return k.fingerprint == o.fingerprint &&
		k.expiry.Equal(o.expiry) &&
		slices.Equal(k.uids, o.uids)
}

// String returns the canonical rendering of the key:
// the fingerprint followed by one indented line per user ID,
// separated by CRLF.
func (k Key) String() string {
	var b strings.Builder
	b.WriteString(k.fingerprint)
	b.WriteString("\r\n")
	for i, u := range k.uids {
		if i > 0 {
			b.WriteString("\r\n")
		}
		b.WriteString("  ")
		b.WriteString(u.String())
	}
	return b.String()
}

type uidJSON struct {
	Name    string     `json:"name"`
	Comment string     `json:"comment,omitempty"`
	Email   string     `json:"email"`
	Expiry  *time.Time `json:"expiry,omitempty"`
}

type keyJSON struct {
	Fingerprint string     `json:"fingerprint"`
	Expiry      *time.Time `json:"expiry,omitempty"`
	UIDs        []UID      `json:"uids"`
}

// MarshalJSON implements json.Marshaler
func (u UID) MarshalJSON() ([]byte, error) {
	return json.Marshal(uidJSON{
		Name:    u.name,
		Comment: u.comment,
		Email:   u.email,
		Expiry:  timePtr(u.expiry),
	})
}

// MarshalJSON implements json.Marshaler
func (k Key) MarshalJSON() ([]byte, error) {
	uids := k.uids
	if uids == nil {
		uids = []UID{}
	}
	return json.Marshal(keyJSON{
		Fingerprint: k.fingerprint,
		Expiry:      timePtr(k.expiry),
		UIDs:        uids,
	})
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
