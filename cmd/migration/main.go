package main

import (
	"context"
	"log"
	"todo-go-backend/config"
	"todo-go-backend/pkg/infrastructure/datastore"
)

func main() {
	config.ReadConfig(config.ReadConfigOption{})

	db, err := datastore.NewClient()
	if err != nil {
		log.Fatalf("failed opening %s client: %v", config.C.Database.Driver, err)
	}
	defer db.Close()

	if err := datastore.CreateSchema(context.Background(), db); err != nil {
		log.Fatalf("failed creating schema resources: %v", err)
	}
	log.Println("schema is up to date")
}
