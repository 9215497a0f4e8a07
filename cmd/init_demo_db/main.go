package main

import (
	"log"

	"inequalitydb/db"
)

func main() {
	// Create the database schema without generating any data, for users who
	// want to load their own real-world statistics instead.
	dbPath := "global_inequality.db"

	dbConn, err := db.BootstrapSQLite(dbPath, db.Options{SchemaOnly: true})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	if sqlDB, err := dbConn.DB(); err == nil {
		defer sqlDB.Close()
	}

	log.Printf("Demo database initialized successfully at %s", dbPath)
	log.Println("Schema created. No generated data loaded.")
}
