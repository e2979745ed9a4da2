package registry

import (
	"todo-go-backend/pkg/adapter/controller"
	"todo-go-backend/pkg/adapter/repository/todorepository"
	"todo-go-backend/pkg/usecase/repository"
	usecase "todo-go-backend/pkg/usecase/usecase/todo"
)

// NewTodoUseCase wires the todo use case to the SQL repository.
func (r *registry) NewTodoUseCase() usecase.Todo {
	return usecase.NewTodoUseCase(r.newTodoRepository())
}

func (r *registry) NewTodoController() controller.Todo {
	return controller.NewTodoController(r.NewTodoUseCase())
}

func (r *registry) newTodoRepository() repository.Todo {
	return todorepository.NewTodoRepository(r.db)
}
