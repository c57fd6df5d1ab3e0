// Command seed loads the built-in catalog and optional demo users.
package main

import (
	"context"
	"flag"
	"log"

	"holocron/internal/config"
	"holocron/internal/database"
	"holocron/internal/seed"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	numUsers := flag.Int("users", 0, "Number of demo users to create")
	skipCatalog := flag.Bool("skip-catalog", false, "Do not load the planet and character catalog")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	ctx := context.Background()

	if !*skipCatalog {
		file, err := seed.DefaultCatalog()
		if err != nil {
			log.Fatalf("Catalog is invalid: %v", err)
		}
		res, err := seed.Catalog(ctx, db, file)
		if err != nil {
			log.Fatalf("Catalog seeding failed: %v", err)
		}
		log.Printf("Catalog: %d planets and %d characters inserted", res.Planets, res.Characters)
	}

	if *numUsers > 0 {
		users, err := seed.Users(ctx, db, *numUsers, bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("User seeding failed: %v", err)
		}
		log.Printf("Users: %d created, password %q", len(users), seed.DemoPassword)
	}
}
