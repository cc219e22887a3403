package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/uyznfoundation/portal/core/contact"
)

const (
	contactSuccessMsg    = "Thanks! Your message has been sent. We’ll reply within 2–3 working days."
	newsletterSuccessMsg = "Thanks! You’re subscribed. Check your inbox for a confirmation."
)

func registerContactAPI(g *echo.Group, deps Deps) {
	api := contactAPI{deps: deps}

	g.POST("/contact", api.submit)
	g.POST("/newsletter", api.subscribe)
}

type contactAPI struct {
	deps Deps
}

func (api contactAPI) submit(ctx echo.Context) error {
	var msg contact.Message
	if err := ctx.Bind(&msg); err != nil {
		return err
	}
	if err := msg.Validate(api.deps.Validate); err != nil {
		return err
	}

	rcpt := api.deps.ContactSvc.Submit(msg)
	return ctx.JSON(http.StatusOK, echo.Map{
		"ref":   rcpt.Ref,
		"flash": contactSuccessMsg,
	})
}

func (api contactAPI) subscribe(ctx echo.Context) error {
	var sub contact.Subscription
	if err := ctx.Bind(&sub); err != nil {
		return err
	}
	if err := sub.Validate(api.deps.Validate); err != nil {
		return err
	}

	rcpt := api.deps.ContactSvc.Subscribe(sub)
	return ctx.JSON(http.StatusOK, echo.Map{
		"ref":   rcpt.Ref,
		"flash": newsletterSuccessMsg,
	})
}
