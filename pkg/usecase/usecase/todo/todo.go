//go:generate mockgen -source=todo.go -destination=./mocks/todo_usecase_mock.go -package=mocks
package usecase

import (
	"context"
	"strings"
	"todo-go-backend/pkg/entity/model"
	"todo-go-backend/pkg/usecase/repository"
	"todo-go-backend/pkg/util/datetime"
)

type todoUseCase struct {
	todoRepository repository.Todo
}

type Todo interface {
	Get(ctx context.Context, id int64) (*model.Todo, error)
	List(ctx context.Context, where model.TodoWhereInput) ([]*model.Todo, error)
	Agenda(ctx context.Context, dueDate string) ([]*model.Todo, error)
	Create(ctx context.Context, input model.CreateTodoInput) error
	Update(ctx context.Context, input model.UpdateTodoInput) error
	Delete(ctx context.Context, id int64) error
}

// This function creates new todo use case
func NewTodoUseCase(r repository.Todo) Todo {
	return &todoUseCase{todoRepository: r}
}

func (t *todoUseCase) Get(ctx context.Context, id int64) (*model.Todo, error) {
	return t.todoRepository.Get(ctx, id)
}

// List matches enum filters against the stored canonical tokens, so the
// lower-case spellings admitted by the query validator are upper-cased here.
func (t *todoUseCase) List(
	ctx context.Context,
	where model.TodoWhereInput,
) ([]*model.Todo, error) {
	where.Priority = strings.ToUpper(where.Priority)
	where.Status = strings.ToUpper(where.Status)
	where.Category = strings.ToUpper(where.Category)

	todos, err := t.todoRepository.List(ctx, where)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []*model.Todo{}
	}
	return todos, nil
}

func (t *todoUseCase) Agenda(ctx context.Context, dueDate string) ([]*model.Todo, error) {
	d, err := datetime.NormalizeDueDate(dueDate)
	if err != nil {
		return nil, model.NewValidationError(MsgInvalidDueDate)
	}

	todos, err := t.todoRepository.ListByDueDate(ctx, d)
	if err != nil {
		return nil, err
	}
	if todos == nil {
		todos = []*model.Todo{}
	}
	return todos, nil
}

func (t *todoUseCase) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) error {
	input, err := ValidateCreateTodoInput(input)
	if err != nil {
		return err
	}
	return t.todoRepository.Create(ctx, input)
}

func (t *todoUseCase) Update(
	ctx context.Context,
	input model.UpdateTodoInput,
) error {
	input, err := ValidateUpdateTodoInput(input)
	if err != nil {
		return err
	}
	return t.todoRepository.Update(ctx, input)
}

func (t *todoUseCase) Delete(ctx context.Context, id int64) error {
	return t.todoRepository.Delete(ctx, id)
}
