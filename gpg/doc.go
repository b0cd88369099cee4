// Package gpg normalizes identity information extracted from OpenPGP keys.
//
// This package supports:
//   - Parsing GnuPG user ID strings of the form "Name (Comment) <email>"
//   - Normalizing heterogeneous expiry values into a single time representation
//   - Building immutable Key and UID values from monkeysign and gpgme shaped records
//   - Loading OpenPGP keyrings and converting their entities into Key values
//
// Key and UID values are immutable after construction and safe to share
// between goroutines. The package does not verify signatures or trust.
package gpg
