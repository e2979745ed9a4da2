package todorepository

import (
	"context"
	"todo-go-backend/pkg/entity/model"
)

// Create inserts the todo in one statement. The primary key rejects a
// duplicate id and the conflict is reported as model.ErrTodoIDExists.
func (r *todoRepository) Create(
	ctx context.Context,
	input model.CreateTodoInput,
) error {
	query, args, err := r.build(
		r.builder().Insert(table).
			Columns(columns...).
			Values(input.ID, input.Todo, input.Priority, input.Status, input.Category, input.DueDate).
			Suffix("ON CONFLICT (id) DO NOTHING"),
	)
	if err != nil {
		return model.NewDBError(err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return model.NewDBError(err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return model.NewDBError(err)
	}
	if n == 0 {
		return model.ErrTodoIDExists
	}

	return nil
}
