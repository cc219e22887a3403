package echoapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/uyznfoundation/portal/core/scholarship"
)

func registerScholarshipAPI(g *echo.Group, deps Deps) {
	api := scholarshipAPI{deps: deps}

	sg := g.Group("/scholarships")
	sg.GET("", api.list)
	sg.GET("/featured", api.featured)
	sg.GET("/catalog", api.catalog)
	sg.GET("/deadlines", api.deadlines)
	sg.GET("/:id", api.detail)

	g.POST("/eligibility-check", api.eligibilityCheck)
}

type scholarshipAPI struct {
	deps Deps
}

func (api scholarshipAPI) list(ctx echo.Context) error {
	var qf scholarship.QueryFilter
	if err := ctx.Bind(&qf); err != nil {
		return err
	}
	qf.Clean()
	return ctx.JSON(http.StatusOK, scholarship.Filter(scholarship.Listings, qf, time.Now()))
}

func (api scholarshipAPI) featured(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, scholarship.Featured(scholarship.Listings))
}

func (api scholarshipAPI) detail(ctx echo.Context) error {
	id := ctx.Param("id")
	for _, lst := range scholarship.Listings {
		if lst.ID == id {
			return ctx.JSON(http.StatusOK, lst)
		}
	}
	return errHttpNotFound
}

func (api scholarshipAPI) catalog(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"levels":  scholarship.Levels,
		"fields":  scholarship.Fields,
		"regions": scholarship.Regions,
		"types":   scholarship.Types,
	})
}

// deadlines lists the month's upcoming deadlines for the calendar view.
// Defaults to the current month when year/month are absent.
func (api scholarshipAPI) deadlines(ctx echo.Context) error {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if y := ctx.QueryParam("year"); y != "" {
		n, err := strconv.Atoi(y)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid year")
		}
		year = n
	}
	if m := ctx.QueryParam("month"); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil || n < 1 || n > 12 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid month")
		}
		month = time.Month(n)
	}
	return ctx.JSON(http.StatusOK, scholarship.DueInMonth(scholarship.Listings, year, month))
}

func (api scholarshipAPI) eligibilityCheck(ctx echo.Context) error {
	var q scholarship.EligibilityQuery
	if err := ctx.Bind(&q); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.deps.Policy.Classify(q))
}
