package rest

import (
	"strconv"
	"strings"
	"todo-go-backend/pkg/adapter/controller"
)

// Handlers holds the HTTP handlers of the entire app
type Handlers struct {
	Todo *TodoHandler
}

// New builds the handlers on top of the controllers.
func New(ctrl controller.Controller) Handlers {
	return Handlers{
		Todo: NewTodoHandler(ctrl.Todo),
	}
}

// parseID reads a path id. Anything that is not an integer matches no row.
func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
