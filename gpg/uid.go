package gpg

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// UnknownEmail is reported as the email of a user ID that has no <email> part
const UnknownEmail = "unknown"

// ParseUID splits a GnuPG user ID into its name, comment and email components.
//
// The encouraged format for user IDs is:
//
//	Name Name (Comment) <email@domain>
//
// The comment is removed but not returned, so comment is always empty.
// If the user ID has no email part, UnknownEmail is returned.
// ErrMalformedIdentity is returned when a comment is opened but not closed.
func ParseUID(uid string) (name, comment, email string, err error) {
	if start := strings.IndexByte(uid, '('); start >= 0 {
		end := strings.IndexByte(uid[start:], ')')
		if end < 0 {
			return "", "", "", errors.Wrapf(ErrMalformedIdentity, "unclosed comment: %q", uid)
		}
		uid = strings.TrimSpace(uid[:start]) + strings.TrimSpace(uid[start+end+1:])
	}

	// TODO: parse the comment, UID.Comment is always empty until then
	name, rest, found := strings.Cut(uid, "<")
	name = strings.TrimSpace(name)
	email = UnknownEmail
	if found {
		email = strings.TrimSpace(strings.ReplaceAll(rest, ">", ""))
	}

	return name, "", email, nil
}

// UID represents an OpenPGP user ID, to the extent we care about it.
//
// UID is immutable and comparable, so it can be used as a map key.
type UID struct {
	expiry  time.Time
	name    string
	comment string
	email   string
}

// NewUID returns UID with normalized expiry, see ParseExpiry
func NewUID(expiry any, name, comment, email string) (UID, error) {
	exp, err := ParseExpiry(expiry)
	if err != nil {
		return UID{}, err
	}
	return UID{
		expiry:  exp,
		name:    name,
		comment: comment,
		email:   email,
	}, nil
}

// UIDFromMonkeysign creates UID from a monkeysign user ID record
func UIDFromMonkeysign(r BackendAUID) (UID, error) {
	name, comment, email, err := ParseUID(r.UID)
	if err != nil {
		return UID{}, err
	}
	u, err := NewUID(r.Expire, name, comment, email)
	if err != nil {
		return UID{}, errors.WithMessagef(err, "uid %q", r.UID)
	}
	return u, nil
}

// UIDFromGPGME creates UID from a gpgme user ID record.
// gpgme reports the name and email separately and does not expose
// an expiry for user IDs, it is carried by the binding signature.
func UIDFromGPGME(r BackendBUID) UID {
	return UID{
		name:  r.Name,
		email: r.Email,
	}
}

// Name returns the display name
func (u UID) Name() string {
	return u.name
}

// Comment returns the comment, currently always empty
func (u UID) Comment() string {
	return u.comment
}

// Email returns the email address, or UnknownEmail
func (u UID) Email() string {
	return u.email
}

// Expiry returns the expiry time, and false if the UID does not expire
func (u UID) Expiry() (time.Time, bool) {
	return u.expiry, !u.expiry.IsZero()
}

// String returns the canonical rendering of the user ID
func (u UID) String() string {
	if u.comment != "" {
		return u.name + " (" + u.comment + ") <" + u.email + ">"
	}
	return u.name + " <" + u.email + ">"
}
