package entity

import "time"

// Segmentos de cliente usados por el filtro de listado.
const (
	SegmentoHogar      = "hogar"
	SegmentoRestaurant = "restaurant"
	SegmentoRevendedor = "revendedor"
)

// Cliente representa un cliente de la distribuidora.
type Cliente struct {
	ID        string
	Nombre    string
	Telefono  string
	Email     string
	Comuna    string
	Segmento  string
	Direccion string
	Notas     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
