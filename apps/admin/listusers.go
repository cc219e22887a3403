package main

import (
	"fmt"

	"github.com/uyznfoundation/portal/core"
	"github.com/uyznfoundation/portal/core/user"
)

// listUsers prints the directory, one partition per role. An empty role
// prints all partitions.
func (cli *commandLine) listUsers(role string) error {
	role = core.CleanString(role, true /* lower */)
	if role != "" && !user.ValidRole(role) {
		return fmt.Errorf("%q: no such role", role)
	}

	dir := cli.usrSvc.Directory()
	for _, r := range user.AllRoles {
		if role != "" && r != role {
			continue
		}
		fmt.Fprintf(cli.out, "%s:\n", r)
		for _, usr := range *dir.Partition(r) {
			fmt.Fprintf(cli.out, "  %d  %s  <%s>\n", usr.ID, usr.Name, usr.Email)
		}
	}
	return nil
}
