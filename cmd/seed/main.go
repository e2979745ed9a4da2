package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"todo-go-backend/config"
	"todo-go-backend/pkg/entity/model"
	"todo-go-backend/pkg/infrastructure/datastore"
	"todo-go-backend/pkg/registry"

	"github.com/jmoiron/sqlx"
)

func strPtr(s string) *string { return &s }

var seedTodos = []model.CreateTodoInput{
	{
		ID:       1,
		Todo:     "Learn HTML",
		Priority: model.PriorityHigh,
		Status:   model.StatusToDo,
		Category: model.CategoryLearning,
		DueDate:  strPtr("2021-02-22"),
	},
	{
		ID:       2,
		Todo:     "Buy a Car",
		Priority: model.PriorityMedium,
		Status:   model.StatusInProgress,
		Category: model.CategoryHome,
		DueDate:  strPtr("2021-02-22"),
	},
	{
		ID:       3,
		Todo:     "Clean the garden",
		Priority: model.PriorityLow,
		Status:   model.StatusToDo,
		Category: model.CategoryHome,
		DueDate:  strPtr("2021-02-23"),
	},
	{
		ID:       4,
		Todo:     "Fix the bug",
		Priority: model.PriorityMedium,
		Status:   model.StatusDone,
		Category: model.CategoryWork,
		DueDate:  strPtr("2021-01-12"),
	},
}

func main() {
	// Parse command line flags
	env := flag.String("env", "", "Environment (development, test, e2e, production)")
	truncate := flag.Bool("truncate", false, "Truncate data (delete all todos)")
	flag.Parse()

	// Set environment if provided via flag, otherwise rely on APP_ENV or default
	if *env != "" {
		os.Setenv("APP_ENV", *env)
	}

	config.ReadConfig(config.ReadConfigOption{})
	log.Printf("Starting seed tool for environment: %s", config.C.AppEnv)

	db, err := datastore.NewClient()
	if err != nil {
		log.Fatalf("Failed to create database client: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := datastore.CreateSchema(ctx, db); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	if *truncate {
		if err := truncateData(ctx, db); err != nil {
			log.Fatalf("Failed to truncate data: %v", err)
		}
		log.Println("Truncation completed successfully!")
	}

	if err := seedTodosData(ctx, db); err != nil {
		log.Fatalf("Failed to seed todos: %v", err)
	}

	log.Println("Seeding completed successfully!")
}

func truncateData(ctx context.Context, db *sqlx.DB) error {
	log.Println("Truncating todo table...")
	if _, err := db.ExecContext(ctx, "DELETE FROM todo"); err != nil {
		return fmt.Errorf("failed to delete todos: %w", err)
	}
	return nil
}

func seedTodosData(ctx context.Context, db *sqlx.DB) error {
	log.Println("Seeding todos...")

	uc := registry.New(db).NewTodoUseCase()
	for _, t := range seedTodos {
		err := uc.Create(ctx, t)
		if model.IsDuplicateID(err) {
			log.Printf("Todo %d already exists, skipping", t.ID)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create todo %d: %w", t.ID, err)
		}
		log.Printf("Created todo: %d %s", t.ID, t.Todo)
	}

	return nil
}
