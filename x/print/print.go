// Package print provides helpers to print keys in human readable form
package print

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/effective-security/keysign/gpg"
)

// JSON prints value to out
func JSON(w io.Writer, value any) error {
	js, err := json.MarshalIndent(value, "", "\t")
	if err != nil {
		return err
	}
	_, _ = w.Write(js)
	_, _ = w.Write([]byte("\n"))
	return nil
}

// Keys prints the canonical rendering of keys
func Keys(w io.Writer, keys []gpg.Key) {
	for _, k := range keys {
		Key(w, k)
	}
}

// Key prints the canonical rendering of the key
func Key(w io.Writer, k gpg.Key) {
	fmt.Fprintf(w, "%s\r\n", k.String())
	if exp, ok := k.Expiry(); ok {
		fmt.Fprintf(w, "  [expires: %s]\r\n", exp.Format(time.RFC3339))
	}
}

// UID prints parsed components of the user ID
func UID(w io.Writer, u gpg.UID) {
	fmt.Fprintf(w, "Name:    %s\n", u.Name())
	if u.Comment() != "" {
		fmt.Fprintf(w, "Comment: %s\n", u.Comment())
	}
	fmt.Fprintf(w, "Email:   %s\n", u.Email())
	if exp, ok := u.Expiry(); ok {
		fmt.Fprintf(w, "Expires: %s\n", exp.Format(time.RFC3339))
	}
}
