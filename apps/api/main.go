package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	echoapi "github.com/uyznfoundation/portal/apps/api/echo"
	"github.com/uyznfoundation/portal/core"
	"github.com/uyznfoundation/portal/core/contact"
	"github.com/uyznfoundation/portal/core/scholarship"
	"github.com/uyznfoundation/portal/core/user"
	emailsvc "github.com/uyznfoundation/portal/services/email"
	logsvc "github.com/uyznfoundation/portal/services/logger"
	"github.com/uyznfoundation/portal/storage/database"
	"github.com/uyznfoundation/portal/storage/localstore"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up logger
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up storage; the session always lives in the local store, only
	// the directory backend is switchable.
	store, err := localstore.Open(conf.Storage.DataDir)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening local store: %v", err), err)
	}
	sessionRepo := localstore.NewSessionRepository(store)

	dirRepo, closeDB, err := setUpDirectoryRepository(conf, store)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up directory storage: %v", err), err)
	}
	defer func() {
		if err = closeDB(); err != nil {
			logger.Error("closing database", err)
		}
	}()

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	usrSvc, err := user.NewService(dirRepo, sessionRepo, conf.DemoPassword)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up user service: %v", err), err)
	}
	contactSvc := contact.NewService(conf, mailSvc)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		conf.Server.Addr,
		echoapi.Deps{
			Conf:       conf,
			Logger:     logger,
			UserSvc:    usrSvc,
			ContactSvc: contactSvc,
			Policy:     scholarship.NewPolicy(conf.Eligibility),
			Validate:   validate,
			Translator: translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDirectoryRepository(conf *core.Config, store *localstore.DB) (user.Repository, func() error, error) {
	noop := func() error { return nil }

	switch conf.Storage.Engine {
	case core.StorageEnginePostgres:
		db, err := database.Open(conf)
		if err != nil {
			return nil, noop, err
		}
		repo, err := database.NewDirectoryRepository(db)
		if err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return repo, db.Close, nil
	default:
		return localstore.NewDirectoryRepository(store), noop, nil
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
