package testutil

import (
	"context"
	"testing"
	"todo-go-backend/pkg/infrastructure/datastore"

	"github.com/jmoiron/sqlx"
)

// NewDBClient opens the database of the loaded config and creates the schema.
func NewDBClient(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := datastore.NewClient()
	if err != nil {
		t.Fatalf("failed to open db connection: %v", err)
	}
	if err := datastore.CreateSchema(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("failed to create schema: %v", err)
	}
	return db
}

// DropAll drops all the data from database
func DropAll(t *testing.T, db *sqlx.DB) {
	t.Log("drop data from database")
	DropTodo(t, db)
}

// DropTodo drops all the data from todos.
func DropTodo(t *testing.T, db *sqlx.DB) {
	if _, err := db.ExecContext(context.Background(), "DELETE FROM todo"); err != nil {
		t.Error(err)
		t.FailNow()
	}
}
