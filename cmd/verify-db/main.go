// verify-db sanity-checks a deployed database: confirms the expected tables
// exist, prints row counts, and reports employee names that collide once
// normalized — the cases where the reconciliation index silently keeps only
// the later entry.
//
// Usage: go run ./cmd/verify-db
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"technician-portal/internal/core"
	"technician-portal/internal/db"
	"technician-portal/internal/reconcile"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()
	pool, err := db.NewPool(ctx, os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	tables := []string{"users", "employees", "materials", "calendar_events", "travel_events", "work_events"}
	ok := true
	for _, table := range tables {
		var count int
		if err := pool.QueryRow(ctx, fmt.Sprintf("SELECT count(*) FROM %s", table)).Scan(&count); err != nil {
			fmt.Printf("MISSING  %-16s %v\n", table, err)
			ok = false
			continue
		}
		fmt.Printf("OK       %-16s %d rows\n", table, count)
	}
	if !ok {
		log.Fatal("schema incomplete — run ./cmd/migrate")
	}

	directory, err := core.NewEmployeeService(pool).Directory(ctx)
	if err != nil {
		log.Fatalf("employee directory: %v", err)
	}
	_, collisions := reconcile.BuildIndex(directory)
	if len(collisions) == 0 {
		fmt.Println("no employee name collisions")
		return
	}
	fmt.Printf("%d employee name collision(s):\n", len(collisions))
	for _, c := range collisions {
		fmt.Printf("  key %q: id %d shadows id %d\n", c.Key, c.KeptID, c.DroppedID)
	}
}
