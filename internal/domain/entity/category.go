package entity

// Category categoría de catálogo (nombre único).
type Category struct {
	ID          string
	Name        string
	Description string
	Audit
}
