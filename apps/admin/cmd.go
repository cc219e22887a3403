package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/uyznfoundation/portal/core/user"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	usrSvc *user.Service
	out    io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  seeddb - reset the directory to the demo sample accounts")
	fmt.Fprintln(cli.out, "  adduser -role ROLE -name NAME -email EMAIL - add a demo account")
	fmt.Fprintln(cli.out, "  listusers [-role ROLE] - list demo accounts")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ContinueOnError)
	addUserRole := addUserCmd.String("role", "", "The account role: applicant, admin or partner.")
	addUserName := addUserCmd.String("name", "", "The account holder's full name.")
	addUserEmail := addUserCmd.String("email", "", "The account email.")

	listUsersCmd := flag.NewFlagSet("listusers", flag.ContinueOnError)
	listUsersRole := listUsersCmd.String("role", "", "Limit the listing to one role.")

	switch args[1] {
	case "seeddb":
		return cli.seedDB()
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserRole == "" || *addUserName == "" || *addUserEmail == "" {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserRole, *addUserName, *addUserEmail)
	case "listusers":
		if err := listUsersCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.listUsers(*listUsersRole)
	default:
		cli.printUsage()
		return errHelp
	}
}
