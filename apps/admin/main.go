package main

import (
	"log"
	"os"

	"github.com/uyznfoundation/portal/core"
	"github.com/uyznfoundation/portal/core/user"
	"github.com/uyznfoundation/portal/storage/localstore"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up storage
	store, err := localstore.Open(conf.Storage.DataDir)
	errAndDie(err)

	usrSvc, err := user.NewService(
		localstore.NewDirectoryRepository(store),
		localstore.NewSessionRepository(store),
		conf.DemoPassword,
	)
	errAndDie(err)

	// start CLI
	cli := commandLine{
		usrSvc: usrSvc,
		out:    os.Stdout,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
