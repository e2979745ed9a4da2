//go:generate mockgen -source=todo.go -destination=./mocks/todo_repository_mock.go -package=mocks
package repository

import (
	"context"
	"todo-go-backend/pkg/entity/model"
)

// Todo is an interface of repository

type Todo interface {
	Get(ctx context.Context, id int64) (*model.Todo, error)
	List(ctx context.Context, where model.TodoWhereInput) ([]*model.Todo, error)
	ListByDueDate(ctx context.Context, dueDate string) ([]*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) error
	Update(ctx context.Context, input model.UpdateTodoInput) error
	Delete(ctx context.Context, id int64) error
}
