package main

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/uyznfoundation/portal/core"
	"github.com/uyznfoundation/portal/core/user"
)

// addUser creates a demo account in the given role partition. All demo
// accounts share the fixed demo password, so none is asked for.
func (cli *commandLine) addUser(role, name, email string) error {
	role = core.CleanString(role, true /* lower */)
	if !user.ValidRole(role) {
		return fmt.Errorf("%q: no such role", role)
	}

	nu := user.NewUser{
		Role:  role,
		Name:  core.CleanString(name),
		Email: core.CleanString(email, true /* lower */),
	}

	// Create, not Signup: the CLI must not sign the new account in, or
	// it would clobber whatever session the web client holds.
	usr, err := cli.usrSvc.Create(nu)
	if err != nil {
		return errors.Wrap(err, "adding user")
	}

	fmt.Fprintf(cli.out, "%s account %q (%s) created with ID %d\n", usr.Role, usr.Name, usr.Email, usr.ID)
	return nil
}
