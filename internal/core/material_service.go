package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type materialService struct {
	pool *pgxpool.Pool
}

// NewMaterialService constructs a MaterialService backed by PostgreSQL.
func NewMaterialService(pool *pgxpool.Pool) MaterialService {
	return &materialService{pool: pool}
}

func (s *materialService) ListByType(ctx context.Context, materialType string) ([]Material, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, type, category, description, manufacture, vendor
		FROM materials
		WHERE type = $1
		ORDER BY id`,
		materialType,
	)
	if err != nil {
		return nil, fmt.Errorf("list %s materials: %w", materialType, err)
	}
	defer rows.Close()

	var materials []Material
	for rows.Next() {
		var m Material
		if err := rows.Scan(&m.ID, &m.Type, &m.Category, &m.Description, &m.Manufacture, &m.Vendor); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate materials: %w", err)
	}
	return materials, nil
}
