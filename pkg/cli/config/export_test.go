package config

// NewCatalogForTest creates a Catalog config bound to a file path
func NewCatalogForTest(path string) *Catalog {
	return &Catalog{path: path}
}
