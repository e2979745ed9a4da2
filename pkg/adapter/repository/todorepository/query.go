package todorepository

import (
	"context"
	"database/sql"
	"strings"
	"todo-go-backend/pkg/entity/model"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
)

func (r *todoRepository) Get(
	ctx context.Context,
	id int64,
) (*model.Todo, error) {
	query, args, err := r.build(
		r.builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id}),
	)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	var t model.Todo
	if err := r.db.GetContext(ctx, &t, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, model.NewDBError(err)
	}

	return &t, nil
}

// List matches todo text case-insensitively and each enum column as a
// substring of the stored token. Empty filters match every row.
func (r *todoRepository) List(
	ctx context.Context,
	where model.TodoWhereInput,
) ([]*model.Todo, error) {
	q := r.builder().Select(columns...).From(table).
		Where(squirrel.Like{"LOWER(todo)": contains(strings.ToLower(where.SearchQ))}).
		Where(squirrel.Like{"priority": contains(where.Priority)}).
		Where(squirrel.Like{"status": contains(where.Status)}).
		Where(squirrel.Like{"category": contains(where.Category)}).
		OrderBy("id")

	return r.selectTodos(ctx, q)
}

func (r *todoRepository) ListByDueDate(
	ctx context.Context,
	dueDate string,
) ([]*model.Todo, error) {
	q := r.builder().Select(columns...).From(table).
		Where(squirrel.Eq{"due_date": dueDate}).
		OrderBy("id")

	return r.selectTodos(ctx, q)
}

func (r *todoRepository) selectTodos(
	ctx context.Context,
	q squirrel.SelectBuilder,
) ([]*model.Todo, error) {
	query, args, err := r.build(q)
	if err != nil {
		return nil, model.NewDBError(err)
	}

	todos := []*model.Todo{}
	if err := r.db.SelectContext(ctx, &todos, query, args...); err != nil {
		return nil, model.NewDBError(err)
	}

	return todos, nil
}

func contains(s string) string {
	return "%" + s + "%"
}
