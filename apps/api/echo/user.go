package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/uyznfoundation/portal/core"
	"github.com/uyznfoundation/portal/core/user"
)

func registerUserAPI(g *echo.Group, jwt echo.MiddlewareFunc, deps Deps) {
	api := userAPI{deps: deps}

	ug := g.Group("/users")
	ug.POST("/login", api.login)
	ug.POST("/signup", api.signup)
	ug.POST("/logout", api.logout, jwt)
	ug.GET("/me", api.me, jwt)
	ug.GET("/roles", api.roles)

	pg := g.Group("/portal", jwt)
	pg.GET("/applicant", api.portal, requireRoleMiddleware(user.RoleApplicant))
	pg.GET("/admin", api.portal, requireRoleMiddleware(user.RoleAdmin))
	pg.GET("/partner", api.portal, requireRoleMiddleware(user.RolePartner))
}

type userAPI struct {
	deps Deps
}

// authResponse is returned on successful login or signup. The flash and
// redirect fields mirror what the web client shows and where it lands.
type authResponse struct {
	Token    string    `json:"token"`
	User     user.User `json:"user"`
	Flash    string    `json:"flash"`
	Redirect string    `json:"redirect"`
}

func (api userAPI) login(ctx echo.Context) error {
	var cr user.Credentials
	if err := ctx.Bind(&cr); err != nil {
		return err
	}
	if err := cr.Validate(api.deps.Validate); err != nil {
		return err
	}

	usr, err := api.deps.UserSvc.Login(cr)
	if err != nil {
		switch errors.Cause(err) {
		case user.ErrInvalidCredentials:
			return core.NewValidationError(nil, core.FieldError{Field: "password", Error: user.ErrInvalidCredentials.Error()})
		case user.ErrNotFound:
			return core.NewValidationError(nil, core.FieldError{Field: "email", Error: user.ErrNotFound.Error()})
		}
		return errors.Wrap(err, "logging user in")
	}

	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusOK, authResponse{
		Token:    token,
		User:     usr,
		Flash:    user.WelcomeFlash(usr.Role),
		Redirect: usr.PortalPath(),
	})
}

func (api userAPI) signup(ctx echo.Context) error {
	var nu user.NewUser
	if err := ctx.Bind(&nu); err != nil {
		return err
	}
	if err := nu.Validate(api.deps.Validate); err != nil {
		return err
	}

	usr, err := api.deps.UserSvc.Signup(nu)
	if err != nil {
		if errors.Cause(err) == user.ErrEmailExists {
			return core.NewValidationError(nil, core.FieldError{Field: "email", Error: user.ErrEmailExists.Error()})
		}
		return errors.Wrap(err, "signing user up")
	}

	token, err := GenerateToken(GetUserClaims(usr))
	if err != nil {
		return errors.Wrap(err, "generating token")
	}
	return ctx.JSON(http.StatusCreated, authResponse{
		Token:    token,
		User:     usr,
		Flash:    user.SignupFlash(usr.Role),
		Redirect: usr.PortalPath(),
	})
}

func (api userAPI) logout(ctx echo.Context) error {
	if err := api.deps.UserSvc.Logout(); err != nil {
		return errors.Wrap(err, "logging user out")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api userAPI) me(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api userAPI) roles(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, user.Roles)
}

func (api userAPI) portal(ctx echo.Context) error {
	usr, err := getContextUser(ctx, api.deps.UserSvc)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"user":  usr,
		"flash": user.WelcomeFlash(usr.Role),
	})
}
