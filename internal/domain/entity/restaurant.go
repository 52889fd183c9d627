package entity

import (
	"strings"
	"time"
)

// Restaurant representa un local para el cual se arman listas de compra.
// Code es el código corto usado en el correlativo de series (ej. 'ALP', 'MIL').
type Restaurant struct {
	ID        string
	OwnerID   string
	Name      string // único por propietario
	Code      string // único por propietario, 3 letras mayúsculas
	Address   string
	Contact   string
	CreatedAt time.Time
}

// NormalizeCode normaliza el código a mayúsculas y máximo 3 caracteres.
func NormalizeCode(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) > 3 {
		code = code[:3]
	}
	return code
}
