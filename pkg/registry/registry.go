package registry

import (
	"todo-go-backend/pkg/adapter/controller"
	usecase "todo-go-backend/pkg/usecase/usecase/todo"

	"github.com/jmoiron/sqlx"
)

type registry struct {
	db *sqlx.DB
}

// Registry is an interface of registry
type Registry interface {
	NewController() controller.Controller
	NewTodoUseCase() usecase.Todo
}

// New registers entire controller with dependencies
func New(db *sqlx.DB) Registry {
	return &registry{db: db}
}

// NewController generates controllers
func (r *registry) NewController() controller.Controller {
	return controller.Controller{
		Todo: r.NewTodoController(),
	}
}
