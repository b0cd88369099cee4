// Package legacy provides accessors for callers that still expect
// the raw string fields of keys and user IDs.
//
// Deprecated: use gpg.Key.Fingerprint and gpg.UID.String instead.
package legacy

import (
	"github.com/effective-security/keysign/gpg"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/keysign/gpg", "legacy")

// warn is called once on every access to a legacy accessor
var warn = func(accessor, replacement string) {
	logger.KV(xlog.WARNING, "reason", "deprecated", "accessor", accessor, "use", replacement)
}

// Fpr returns the fingerprint of the key.
//
// Deprecated: use gpg.Key.Fingerprint instead.
func Fpr(k gpg.Key) string {
	warn("fpr", "Key.Fingerprint")
	return k.Fingerprint()
}

// UID returns the canonical rendering of the user ID.
//
// Deprecated: use gpg.UID.String instead.
func UID(u gpg.UID) string {
	warn("uid", "UID.String")
	return u.String()
}
