package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/keysign/gpg"
	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"
	"golang.org/x/crypto/openpgp/packet"
)

const testFpr = "FF52DA33C025B1E0B91092FC1C3419BF1BF98D6D"

func (s *testSuite) writeKeyring(name string, entities ...*openpgp.Entity) string {
	var buf bytes.Buffer
	for _, e := range entities {
		w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
		s.Require().NoError(err)
		s.Require().NoError(e.Serialize(w))
		s.Require().NoError(w.Close())
		buf.WriteString("\n")
	}

	file := filepath.Join(s.tmpdir, name)
	s.Require().NoError(os.WriteFile(file, buf.Bytes(), 0644))
	return file
}

func (s *testSuite) newEntity(name, email string) *openpgp.Entity {
	e, err := openpgp.NewEntity(name, "", email, &packet.Config{RSABits: 1024})
	s.Require().NoError(err)
	return e
}

func (s *testSuite) TestKeyList() {
	e1 := s.newEntity("Tobias Mueller", "tobias.mueller2@mail.dcu.ie")
	e2 := s.newEntity("Second", "second@example.com")
	fpr1 := fmt.Sprintf("%X", e1.PrimaryKey.Fingerprint[:])
	fpr2 := fmt.Sprintf("%X", e2.PrimaryKey.Fingerprint[:])

	file := s.writeKeyring("list.asc", e1, e2)

	cmd := KeyListCmd{
		Keyring: []string{file},
	}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.HasText(
		fpr1+"\r\n  Tobias Mueller <tobias.mueller2@mail.dcu.ie>\r\n",
		fpr2+"\r\n  Second <second@example.com>\r\n",
	)

	s.Out.Reset()
	cmd.Fingerprint = fpr2
	cmd.JSON = true
	err = cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.HasText(`"fingerprint": "`+fpr2+`"`, `"email": "second@example.com"`)
	s.HasNoText(fpr1)

	cmd = KeyListCmd{
		Keyring: []string{filepath.Join(s.tmpdir, "missing.asc")},
	}
	err = cmd.Run(s.ctl)
	s.Require().Error(err)
	s.Contains(err.Error(), "unable to load keyring")
}

func (s *testSuite) TestKeyList_Stdin() {
	e := s.newEntity("Stdin", "stdin@example.com")
	data, err := os.ReadFile(s.writeKeyring("stdin.asc", e))
	s.Require().NoError(err)

	s.ctl.WithReader(bytes.NewReader(data))
	defer s.ctl.WithReader(nil)

	cmd := KeyListCmd{
		Keyring: []string{"-"},
	}
	err = cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.HasText("  Stdin <stdin@example.com>")
}

func (s *testSuite) TestKeyImport() {
	cmd := KeyImportCmd{
		In:      "../../../gpg/testdata/monkeysign.yaml",
		Backend: "monkeysign",
	}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.HasText(
		testFpr+"\r\n  Tobias Mueller <tobias.mueller2@mail.dcu.ie>\r\n  Tobias Mueller <4tmuelle@informatik.uni-hamburg.de>\r\n",
		"[expires: 2017-05-09T19:09:41Z]",
		"140162A978431A0258B3EC24E69EEE14181523F4\r\n  Test Key <unknown>\r\n",
	)

	s.Out.Reset()
	no := true
	cmd.NoExpired = &no
	err = cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.HasNoText(testFpr)
	s.HasText("140162A978431A0258B3EC24E69EEE14181523F4")

	s.Out.Reset()
	cmd = KeyImportCmd{
		In:          "../../../gpg/testdata/gpgme.json",
		Backend:     "gpgme",
		Fingerprint: testFpr,
		JSON:        true,
	}
	err = cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.HasText(`"fingerprint": "`+testFpr+`"`, `"expiry": "2017-05-09T19:09:41Z"`)

	cmd = KeyImportCmd{
		In:      "../../../gpg/testdata/gpgme_nosubkeys.yaml",
		Backend: "gpgme",
	}
	err = cmd.Run(s.ctl)
	s.Require().Error(err)
	s.True(errors.Is(err, gpg.ErrInvalidKeyRecord))

	cmd = KeyImportCmd{
		In:      "../../../gpg/testdata/gpgme.json",
		Backend: "monkeysign",
	}
	err = cmd.Run(s.ctl)
	s.Require().Error(err)
	s.Contains(err.Error(), "unable to decode records")

	cmd = KeyImportCmd{
		In:      "../../../gpg/testdata/gpgme.json",
		Backend: "gnupg",
	}
	err = cmd.Run(s.ctl)
	s.EqualError(err, "unsupported backend: gnupg")

	cmd = KeyImportCmd{
		Backend: "gpgme",
	}
	err = cmd.Run(s.ctl)
	s.Require().Error(err)
	s.Contains(err.Error(), "empty file name")
}

func (s *testSuite) TestFilterKeys() {
	k1, err := gpg.NewKey("1494356981", testFpr, nil)
	s.Require().NoError(err)
	k2, err := gpg.NewKey(nil, "140162A978431A0258B3EC24E69EEE14181523F4", nil)
	s.Require().NoError(err)
	list := []gpg.Key{k1, k2}

	now := time.Unix(1494356981, 0)
	s.Len(filterKeys(list, "", false, now), 2)
	s.Len(filterKeys(list, testFpr, false, now), 1)
	s.Len(filterKeys(list, "", true, now.Add(-time.Second)), 2)

	got := filterKeys(list, "", true, now)
	s.Require().Len(got, 1)
	s.True(k2.Equal(got[0]))
}
