package gpg

// BackendARecord is a key as reported by monkeysign,
// which keeps the raw user ID strings of the GnuPG colon listing.
//
// Expiry values are kept raw, as decoded, and normalized by ParseExpiry:
// an integer 0 means no expiry while the string "0" is the Unix epoch.
type BackendARecord struct {
	Fpr      string        `json:"fpr" yaml:"fpr"`
	Expiry   any           `json:"expiry,omitempty" yaml:"expiry,omitempty"`
	UIDsList []BackendAUID `json:"uidslist" yaml:"uidslist"`
}

// BackendAUID is a user ID as reported by monkeysign
type BackendAUID struct {
	UID    string `json:"uid" yaml:"uid"`
	Expire any    `json:"expire,omitempty" yaml:"expire,omitempty"`
}

// BackendBRecord is a key as reported by gpgme.
// Subkeys[0] is the primary key.
type BackendBRecord struct {
	Fpr     string           `json:"fpr" yaml:"fpr"`
	Subkeys []BackendBSubkey `json:"subkeys" yaml:"subkeys"`
	UIDs    []BackendBUID    `json:"uids" yaml:"uids"`
}

// BackendBSubkey is a subkey as reported by gpgme
type BackendBSubkey struct {
	// Expires is the epoch of expiration, 0 if the subkey does not expire
	Expires int64 `json:"expires" yaml:"expires"`
}

// BackendBUID is a user ID as reported by gpgme
type BackendBUID struct {
	Name  string `json:"name" yaml:"name"`
	Email string `json:"email" yaml:"email"`
}
