package main

import (
	"log"
	"os"

	"githubsearch/internal/database"
)

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	// Revoked secret rows are kept around so in-flight refreshes fail
	// deterministically; only long-dead ones are purged.
	res := db.Exec(`DELETE FROM tokens WHERE revoked AND updated_at < NOW() - INTERVAL '30 days'`)
	if res.Error != nil {
		log.Fatalf("cleanup tokens failed: %v", res.Error)
	}

	log.Printf("token cleanup completed: tokens=%d", res.RowsAffected)
}
