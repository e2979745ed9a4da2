package todorepository

import (
	"context"
	"todo-go-backend/pkg/entity/model"

	"github.com/Masterminds/squirrel"
)

func (r *todoRepository) Delete(ctx context.Context, id int64) error {
	query, args, err := r.build(
		r.builder().Delete(table).Where(squirrel.Eq{"id": id}),
	)
	if err != nil {
		return model.NewDBError(err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return model.NewDBError(err)
	}

	return nil
}
