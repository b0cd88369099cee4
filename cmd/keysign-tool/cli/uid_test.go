package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/keysign/gpg"
)

func (s *testSuite) TestUIDParse() {
	cmd := UIDParseCmd{
		UID: []string{
			"Tobias Mueller (work) <tobias.mueller2@mail.dcu.ie>",
			"Invalid",
		},
	}
	err := cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.Equal("Name:    Tobias Mueller\nEmail:   tobias.mueller2@mail.dcu.ie\n"+
		"Name:    Invalid\nEmail:   unknown\n", s.Out.String())

	s.Out.Reset()
	cmd.JSON = true
	err = cmd.Run(s.ctl)
	s.Require().NoError(err)
	s.HasText(`"name": "Tobias Mueller"`, `"email": "unknown"`)
	s.HasNoText(`"comment"`, `"expiry"`)

	cmd = UIDParseCmd{
		UID: []string{"Tobias Mueller (work <tobias.mueller2@mail.dcu.ie>"},
	}
	err = cmd.Run(s.ctl)
	s.Require().Error(err)
	s.True(errors.Is(err, gpg.ErrMalformedIdentity))
}
