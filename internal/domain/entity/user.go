package entity

import "time"

// User representa una cuenta del panel de administración.
// El ID del usuario es la clave de alcance (OwnerID) de su catálogo y listas.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
