package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// seedDB replaces the directory with the built-in sample accounts.
func (cli *commandLine) seedDB() error {
	if err := cli.usrSvc.Reset(); err != nil {
		return errors.Wrap(err, "seeding directory")
	}
	fmt.Fprintf(cli.out, "directory reset: %d sample accounts\n", cli.usrSvc.Directory().Len())
	return nil
}
