package dto

import "github.com/shopspring/decimal"

// AgregarPagoRequest deliberately leaves Monto without a validator tag: a
// zero or negative amount is a business rule (400 from the service), not a
// malformed request (422 from binding).
type AgregarPagoRequest struct {
	IDPedido string          `json:"id_pedido" validate:"required,uuid"`
	Monto    decimal.Decimal `json:"monto"`
	Metodo   string          `json:"metodo"    validate:"required"`
}

type PagoResponse struct {
	ID       string          `json:"id"`
	IDPedido string          `json:"id_pedido"`
	Monto    decimal.Decimal `json:"monto"`
	Metodo   string          `json:"metodo"`
	Hora     string          `json:"hora"`
}

type AgregarPagoResponse struct {
	Mensaje     string          `json:"mensaje"`
	Pago        PagoResponse    `json:"pago"`
	TotalPagado decimal.Decimal `json:"total_pagado"`
	TotalPedido decimal.Decimal `json:"total_pedido"`
	Restante    decimal.Decimal `json:"restante"`
}

type PagosDePedidoResponse struct {
	Pagos       []PagoResponse  `json:"pagos"`
	TotalPagado decimal.Decimal `json:"total_pagado"`
	TotalPedido decimal.Decimal `json:"total_pedido"`
	Restante    decimal.Decimal `json:"restante"`
}
