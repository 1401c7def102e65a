package main

import (
	"log"

	"githubsearch/internal/database"
	"githubsearch/internal/domain"
	"githubsearch/internal/pkg/password"
)

func main() {
	db, err := database.Connect("github_search.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM tokens")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	seeded := []struct {
		email     string
		firstName string
		lastName  string
		plain     string
	}{
		{"john.doe@example.com", "John", "Doe", "Password123!"},
		{"jane.doe@example.com", "Jane", "Doe", "Password123!"},
	}

	for _, s := range seeded {
		hash, err := password.Hash(s.plain)
		if err != nil {
			log.Fatal("hash failed:", err)
		}
		user := domain.User{
			Email:     s.email,
			FirstName: s.firstName,
			LastName:  s.lastName,
			Password:  hash,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Fatal("seed user failed:", err)
		}
		log.Printf("User created: %s / %s", s.email, s.plain)
	}

	log.Println("Seed completed")
}
