package core_test

import (
	"context"
	"testing"

	"technician-portal/internal/core"
)

func TestMaterialService_ListByType(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO materials (type, category, description, manufacture, vendor) VALUES
		('data', 'Cabling', 'Cat6 plenum 1000ft', 'CableCo', 'Graybar'),
		('electrical', NULL, '20A breaker', 'Square D', 'Rexel'),
		('data', 'Racks', '42U open frame rack', 'RackWorks', 'Anixter')
	`)
	if err != nil {
		t.Fatalf("seed materials: %v", err)
	}

	svc := core.NewMaterialService(pool)

	t.Run("Data", func(t *testing.T) {
		got, err := svc.ListByType(ctx, core.MaterialTypeData)
		if err != nil {
			t.Fatalf("ListByType: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %d data materials, want 2", len(got))
		}
		if got[0].ID >= got[1].ID {
			t.Errorf("materials not ordered by id: %d before %d", got[0].ID, got[1].ID)
		}
		if got[0].Category == nil || *got[0].Category != "Cabling" {
			t.Errorf("got[0].Category = %v, want Cabling", got[0].Category)
		}
	})

	t.Run("Electrical", func(t *testing.T) {
		got, err := svc.ListByType(ctx, core.MaterialTypeElectrical)
		if err != nil {
			t.Fatalf("ListByType: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("got %d electrical materials, want 1", len(got))
		}
		if got[0].Description == nil || *got[0].Description != "20A breaker" {
			t.Errorf("got[0].Description = %v, want 20A breaker", got[0].Description)
		}
		if got[0].Category != nil {
			t.Errorf("got[0].Category = %q, want nil", *got[0].Category)
		}
	})

	t.Run("UnknownType", func(t *testing.T) {
		got, err := svc.ListByType(ctx, "plumbing")
		if err != nil {
			t.Fatalf("ListByType: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("got %d materials for unknown type, want 0", len(got))
		}
	})
}
