package middleware

import (
	"io"
	"todo-go-backend/pkg/entity/model"
	"todo-go-backend/pkg/infrastructure/router/handler"
	usecase "todo-go-backend/pkg/usecase/usecase/todo"
	"todo-go-backend/pkg/util/datetime"
	"todo-go-backend/pkg/util/jsonbody"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ValidateQueryParams rejects listing requests whose priority, status or
// category filter is repeated or is not an upper-case or all-lower-case
// enum token.
func ValidateQueryParams() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			params := c.QueryParams()
			filter := usecase.QueryFilter{Invalid: map[string]bool{}}
			for name, dst := range map[string]**string{
				"priority": &filter.Priority,
				"status":   &filter.Status,
				"category": &filter.Category,
			} {
				values, ok := params[name]
				switch {
				case !ok || len(values) == 0:
				case len(values) > 1:
					filter.Invalid[name] = true
				default:
					value := values[0]
					*dst = &value
				}
			}

			err := usecase.ValidateQueryFilter(filter)
			if err != nil {
				return handler.HandleError(c, err)
			}

			return next(c)
		}
	}
}

// ValidatePropertyValues decodes a todo body, accepts only canonical
// upper-case enum tokens and normalizes dueDate. The decoded body and the
// normalized due date are attached to the request context.
func ValidatePropertyValues() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			data, err := io.ReadAll(req.Body)
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					return he
				}
				return handler.HandleError(c, model.NewInvalidParamError(usecase.MsgInvalidBody))
			}
			body, err := jsonbody.Decode(data)
			if err != nil {
				return handler.HandleError(c, model.NewInvalidParamError(usecase.MsgInvalidBody))
			}

			props := usecase.TodoProperties{Invalid: map[string]bool{}}
			for name, dst := range map[string]**string{
				"priority": &props.Priority,
				"status":   &props.Status,
				"category": &props.Category,
				"dueDate":  &props.DueDate,
			} {
				v, present, ok := body.String(name)
				switch {
				case !present:
				case !ok:
					props.Invalid[name] = true
				default:
					value := v
					*dst = &value
				}
			}

			dueDate, err := usecase.ValidateTodoProperties(props)
			if err != nil {
				return handler.HandleError(c, err)
			}

			ctx := jsonbody.SetBodyToContext(req.Context(), body)
			if dueDate != nil {
				ctx = datetime.SetDueDateToContext(ctx, *dueDate)
			}
			c.SetRequest(req.WithContext(ctx))

			return next(c)
		}
	}
}

// ValidateQueryDueDate normalizes the required date query parameter and
// attaches it to the request context.
func ValidateQueryDueDate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d, err := datetime.NormalizeDueDate(c.QueryParam("date"))
			if err != nil {
				return handler.HandleError(c, model.NewValidationError(usecase.MsgInvalidDueDate))
			}

			req := c.Request()
			c.SetRequest(req.WithContext(datetime.SetDueDateToContext(req.Context(), d)))

			return next(c)
		}
	}
}
