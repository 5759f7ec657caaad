package dto

import "github.com/shopspring/decimal"

type CrearProductoRequest struct {
	Nombre string          `json:"nombre" validate:"required,min=2"`
	Precio decimal.Decimal `json:"precio" validate:"required,gt=0"`
}

type ActualizarProductoRequest struct {
	Nombre string          `json:"nombre" validate:"required,min=2"`
	Precio decimal.Decimal `json:"precio" validate:"required,gt=0"`
}

type ProductoResponse struct {
	ID     string          `json:"id"`
	Nombre string          `json:"nombre"`
	Precio decimal.Decimal `json:"precio"`
}
