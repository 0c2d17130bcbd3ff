package core

import "context"

// Material catalog types. The catalog is reference data maintained outside
// the import pipelines; the portal only lists it.
const (
	MaterialTypeData       = "data"
	MaterialTypeElectrical = "electrical"
)

// Material is one catalog row. Category is populated for data materials and
// typically absent for electrical ones.
type Material struct {
	ID          int
	Type        string
	Category    *string
	Description *string
	Manufacture *string
	Vendor      *string
}

// MaterialService provides read access to the materials catalog.
type MaterialService interface {
	// ListByType returns every material of the given type ordered by id.
	ListByType(ctx context.Context, materialType string) ([]Material, error)
}
