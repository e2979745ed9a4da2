package router

import (
	"net/http"
	"todo-go-backend/pkg/adapter/controller"
	"todo-go-backend/pkg/adapter/rest"
	"todo-go-backend/pkg/infrastructure/router/handler"
	todomiddleware "todo-go-backend/pkg/infrastructure/router/middleware"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Path of route
const (
	HealthCheckPath = "/health_check"
	TodosPath       = "/todos"
	TodoPath        = TodosPath + "/:todoId"
	AgendaPath      = "/agenda"
)

// MaxBodySize caps request bodies read by the validators.
const MaxBodySize = "1M"

// Options of router
type Options struct {
	// AllowOrigins enables CORS for the listed origins when non-empty.
	AllowOrigins []string
}

// New creates route endpoint
func New(ctrl controller.Controller, logger *zap.Logger, options Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler(logger)

	// /todos/ and /todos are the same route.
	e.Pre(middleware.RemoveTrailingSlash())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return ulid.Make().String() },
	}))
	e.Use(todomiddleware.RequestLogger(logger))
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(MaxBodySize))
	if len(options.AllowOrigins) > 0 {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: options.AllowOrigins,
			AllowMethods: []string{
				http.MethodGet,
				http.MethodPost,
				http.MethodPut,
				http.MethodDelete,
				http.MethodOptions,
			},
			AllowHeaders: []string{
				echo.HeaderOrigin,
				echo.HeaderXRequestedWith,
				echo.HeaderContentType,
				echo.HeaderAccept,
			},
		}))
	}

	e.GET(HealthCheckPath, func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	h := rest.New(ctrl)
	{
		e.GET(TodosPath, h.Todo.List, todomiddleware.ValidateQueryParams())
		e.GET(TodoPath, h.Todo.Get)
		e.GET(AgendaPath, h.Todo.Agenda, todomiddleware.ValidateQueryDueDate())
		e.POST(TodosPath, h.Todo.Create, todomiddleware.ValidatePropertyValues())
		e.PUT(TodoPath, h.Todo.Update, todomiddleware.ValidatePropertyValues())
		e.DELETE(TodoPath, h.Todo.Delete)
	}

	return e
}
