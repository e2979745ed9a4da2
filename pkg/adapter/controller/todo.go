package controller

import (
	"context"
	"todo-go-backend/pkg/entity/model"
	usecase "todo-go-backend/pkg/usecase/usecase/todo"
)

type Todo interface {
	Get(ctx context.Context, id int64) (*model.Todo, error)
	List(ctx context.Context, where model.TodoWhereInput) ([]*model.Todo, error)
	Agenda(ctx context.Context, dueDate string) ([]*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) error
	Update(ctx context.Context, input model.UpdateTodoInput) error
	Delete(ctx context.Context, id int64) error
}

type todoController struct {
	todoUseCase usecase.Todo
}

// Create new todo controller

func NewTodoController(tu usecase.Todo) Todo {
	return &todoController{todoUseCase: tu}
}

func (tc *todoController) Get(ctx context.Context, id int64) (*model.Todo, error) {
	return tc.todoUseCase.Get(ctx, id)
}

func (tc *todoController) List(
	ctx context.Context,
	where model.TodoWhereInput,
) ([]*model.Todo, error) {
	return tc.todoUseCase.List(ctx, where)
}

func (tc *todoController) Agenda(ctx context.Context, dueDate string) ([]*model.Todo, error) {
	return tc.todoUseCase.Agenda(ctx, dueDate)
}

func (tc *todoController) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) error {
	return tc.todoUseCase.Create(ctx, input)
}

func (tc *todoController) Update(
	ctx context.Context,
	input model.UpdateTodoInput,
) error {
	return tc.todoUseCase.Update(ctx, input)
}

func (tc *todoController) Delete(ctx context.Context, id int64) error {
	return tc.todoUseCase.Delete(ctx, id)
}
