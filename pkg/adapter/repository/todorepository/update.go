package todorepository

import (
	"context"
	"fmt"
	"todo-go-backend/pkg/entity/model"

	"github.com/Masterminds/squirrel"
)

var updatableColumns = map[model.TodoField]bool{
	model.TodoFieldTodo:     true,
	model.TodoFieldPriority: true,
	model.TodoFieldStatus:   true,
	model.TodoFieldCategory: true,
	model.TodoFieldDueDate:  true,
}

func (r *todoRepository) Update(
	ctx context.Context,
	input model.UpdateTodoInput,
) error {
	// The column name is interpolated into the statement, only values are bound.
	if !updatableColumns[input.Field] {
		return model.NewInvalidParamError(fmt.Sprintf("unknown column %q", input.Field))
	}

	query, args, err := r.build(
		r.builder().Update(table).
			Set(string(input.Field), input.Value).
			Where(squirrel.Eq{"id": input.ID}),
	)
	if err != nil {
		return model.NewDBError(err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return model.NewDBError(err)
	}

	return nil
}
