// Standalone seeder. Usage: go run scripts/seed/main.go
package main

import (
	"fmt"
	"log"

	"github.com/pillpal/pillpal-api/internal/config"
	"github.com/pillpal/pillpal-api/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	fmt.Println("\nSample user IDs for testing:")
	fmt.Println("  11111111-1111-1111-1111-111111111111 (patient, Europe/Prague)")
	fmt.Println("  22222222-2222-2222-2222-222222222222 (patient, America/New_York)")
	fmt.Println("  33333333-3333-3333-3333-333333333333 (caregiver, Europe/Prague)")
}
