package legacy

import (
	"testing"

	"github.com/effective-security/keysign/gpg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackWarnings(t *testing.T) *[]string {
	t.Helper()
	var calls []string
	orig := warn
	warn = func(accessor, replacement string) {
		calls = append(calls, accessor)
		orig(accessor, replacement)
	}
	t.Cleanup(func() { warn = orig })
	return &calls
}

func TestFpr(t *testing.T) {
	calls := trackWarnings(t)

	k, err := gpg.NewKey(nil, "FF52DA33C025B1E0B91092FC1C3419BF1BF98D6D", nil)
	require.NoError(t, err)

	assert.Equal(t, k.Fingerprint(), Fpr(k))
	assert.Equal(t, []string{"fpr"}, *calls)

	assert.Equal(t, k.Fingerprint(), Fpr(k))
	assert.Equal(t, []string{"fpr", "fpr"}, *calls)
}

func TestUID(t *testing.T) {
	calls := trackWarnings(t)

	u, err := gpg.UIDFromMonkeysign(gpg.BackendAUID{
		UID: "Tobias Mueller <tobias.mueller2@mail.dcu.ie>",
	})
	require.NoError(t, err)

	assert.Equal(t, "Tobias Mueller <tobias.mueller2@mail.dcu.ie>", UID(u))
	assert.Equal(t, u.String(), UID(u))
	assert.Equal(t, []string{"uid", "uid"}, *calls)
}
