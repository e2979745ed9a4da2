package todorepository

import (
	ur "todo-go-backend/pkg/usecase/repository"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const table = "todo"

var columns = []string{"id", "todo", "priority", "status", "category", "due_date"}

type todoRepository struct {
	db *sqlx.DB
}

func NewTodoRepository(db *sqlx.DB) ur.Todo {
	return &todoRepository{db}
}

// builder emits '?' placeholders; build rebinds them for the driver in use.
func (r *todoRepository) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

func (r *todoRepository) build(s squirrel.Sqlizer) (string, []interface{}, error) {
	query, args, err := s.ToSql()
	if err != nil {
		return "", nil, err
	}
	return r.db.Rebind(query), args, nil
}
