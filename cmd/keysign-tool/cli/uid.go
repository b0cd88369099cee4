package cli

import (
	"github.com/cockroachdb/errors"
	"github.com/effective-security/keysign/gpg"
	"github.com/effective-security/keysign/x/print"
)

// UIDCmd provides user ID commands
type UIDCmd struct {
	Parse UIDParseCmd `cmd:"" help:"parse user ID string"`
}

// UIDParseCmd specifies flags for UIDParse action
type UIDParseCmd struct {
	UID  []string `kong:"arg" required:"" help:"user IDs in the form: Name (Comment) <email>"`
	JSON bool     `name:"json" help:"print user IDs as JSON"`
}

// Run the command
func (a *UIDParseCmd) Run(ctx *Cli) error {
	uids := make([]gpg.UID, 0, len(a.UID))
	for _, s := range a.UID {
		name, comment, email, err := gpg.ParseUID(s)
		if err != nil {
			return errors.WithMessage(err, "unable to parse user ID")
		}
		u, err := gpg.NewUID(nil, name, comment, email)
		if err != nil {
			return err
		}
		uids = append(uids, u)
	}

	if a.JSON {
		return ctx.WriteJSON(uids)
	}
	for _, u := range uids {
		print.UID(ctx.Writer(), u)
	}
	return nil
}
