package entity

import "time"

// Category representa una categoría de productos del catálogo.
// El borrado se bloquea mientras existan productos que la referencien.
type Category struct {
	ID        string
	OwnerID   string
	Name      string // único por propietario
	CreatedAt time.Time
}
