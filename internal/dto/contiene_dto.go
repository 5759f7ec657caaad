package dto

import "github.com/shopspring/decimal"

type AgregarItemRequest struct {
	IDPedido   string `json:"id_pedido"   validate:"required,uuid"`
	IDProducto string `json:"id_producto" validate:"required,uuid"`
	Cantidad   int    `json:"cantidad"    validate:"required,min=1"`
}

type ItemPedidoResponse struct {
	ID         string          `json:"id"`
	IDProducto string          `json:"id_producto"`
	Nombre     string          `json:"nombre"`
	Precio     decimal.Decimal `json:"precio"`
	Cantidad   int             `json:"cantidad"`
	Anulado    bool            `json:"anulado"`
	Subtotal   decimal.Decimal `json:"subtotal"`
}

// ItemsDePedidoResponse lists every line of a tab, voided included, for
// audit. Total covers non-voided lines only.
type ItemsDePedidoResponse struct {
	Productos []ItemPedidoResponse `json:"productos"`
	Total     decimal.Decimal      `json:"total"`
}
