package rest

import (
	"net/http"
	"todo-go-backend/pkg/adapter/controller"
	"todo-go-backend/pkg/entity/model"
	usecase "todo-go-backend/pkg/usecase/usecase/todo"
	"todo-go-backend/pkg/util/datetime"
	"todo-go-backend/pkg/util/jsonbody"

	"github.com/labstack/echo/v4"
)

// Responses of the todo endpoints.
const (
	MsgTodoAdded    = "Todo Successfully Added"
	MsgTodoIDExists = "todoId already exists"
	MsgTodoDeleted  = "Todo Deleted"
)

// TodoHandler serves the /todos and /agenda endpoints.
type TodoHandler struct {
	todo controller.Todo
}

func NewTodoHandler(todo controller.Todo) *TodoHandler {
	return &TodoHandler{todo: todo}
}

// List handles GET /todos.
func (h *TodoHandler) List(c echo.Context) error {
	todos, err := h.todo.List(c.Request().Context(), model.TodoWhereInput{
		SearchQ:  c.QueryParam("search_q"),
		Priority: c.QueryParam("priority"),
		Status:   c.QueryParam("status"),
		Category: c.QueryParam("category"),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todos)
}

// Get handles GET /todos/:todoId. A missing todo yields an empty body.
func (h *TodoHandler) Get(c echo.Context) error {
	id, ok := parseID(c.Param("todoId"))
	if !ok {
		return c.NoContent(http.StatusOK)
	}

	t, err := h.todo.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if t == nil {
		return c.NoContent(http.StatusOK)
	}
	return c.JSON(http.StatusOK, t)
}

// Agenda handles GET /agenda with the date normalized by ValidateQueryDueDate.
func (h *TodoHandler) Agenda(c echo.Context) error {
	ctx := c.Request().Context()

	d, ok := datetime.GetDueDateFromContext(ctx)
	if !ok {
		d = c.QueryParam("date")
	}

	todos, err := h.todo.Agenda(ctx, d)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, todos)
}

// Create handles POST /todos. A duplicate id is answered with 200.
func (h *TodoHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	body, ok := jsonbody.GetBodyFromContext(ctx)
	if !ok {
		return model.NewInvalidParamError(usecase.MsgInvalidBody)
	}

	id, ok := body.Int64("id")
	if !ok {
		return model.NewValidationError(usecase.MsgInvalidID)
	}

	text, present, ok := body.String("todo")
	if present && !ok {
		return model.NewValidationError(usecase.MsgInvalidProperty)
	}

	input := model.CreateTodoInput{
		ID:       id,
		Todo:     text,
		Priority: model.Priority(stringProperty(body, "priority")),
		Status:   model.Status(stringProperty(body, "status")),
		Category: model.Category(stringProperty(body, "category")),
	}
	if d, ok := datetime.GetDueDateFromContext(ctx); ok {
		input.DueDate = &d
	}

	if err := h.todo.Create(ctx, input); err != nil {
		if model.IsDuplicateID(err) {
			return c.String(http.StatusOK, MsgTodoIDExists)
		}
		return err
	}

	return c.String(http.StatusOK, MsgTodoAdded)
}

// Update handles PUT /todos/:todoId. Only the first recognized property, in
// the order written in the request body, is applied.
func (h *TodoHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	body, ok := jsonbody.GetBodyFromContext(ctx)
	if !ok {
		return model.NewInvalidParamError(usecase.MsgInvalidBody)
	}

	var (
		field model.TodoField
		name  string
	)
	for _, p := range body.Properties {
		if f, ok := model.TodoFieldFromProperty(p.Name); ok {
			field, name = f, p.Name
			break
		}
	}
	if field == "" {
		return model.NewValidationError(usecase.MsgInvalidProperty)
	}

	value, _, ok := body.String(name)
	if !ok {
		return model.NewValidationError(usecase.MsgInvalidProperty)
	}

	if id, ok := parseID(c.Param("todoId")); ok {
		err := h.todo.Update(ctx, model.UpdateTodoInput{
			ID:    id,
			Field: field,
			Value: value,
		})
		if err != nil {
			return err
		}
	}

	return c.String(http.StatusOK, field.Label()+" Updated")
}

// Delete handles DELETE /todos/:todoId whether or not the todo exists.
func (h *TodoHandler) Delete(c echo.Context) error {
	if id, ok := parseID(c.Param("todoId")); ok {
		if err := h.todo.Delete(c.Request().Context(), id); err != nil {
			return err
		}
	}
	return c.String(http.StatusOK, MsgTodoDeleted)
}

func stringProperty(b *jsonbody.Body, name string) string {
	v, _, _ := b.String(name)
	return v
}
