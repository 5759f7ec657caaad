package dto

import "github.com/shopspring/decimal"

type CrearPedidoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1"`
}

type ActualizarPedidoRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1"`
}

// FiltroPedidos is bound from the query string of GET /pedidos.
// It replaces the original's ad hoc WHERE-clause concatenation with a typed
// filter translated by one tested function in the repository layer.
type FiltroPedidos struct {
	FechaInicio string `form:"fechaInicio" validate:"omitempty,datetime=2006-01-02"`
	FechaFin    string `form:"fechaFin"    validate:"omitempty,datetime=2006-01-02"`
	Estado      string `form:"estado"      validate:"omitempty,oneof=pendiente pagado anulado cancelado"`
	Usuario     string `form:"usuario"`
	Pagina      int    `form:"pagina,default=1" validate:"min=1"`
	Limite      int    `form:"limite,default=10" validate:"min=1,max=100"`
}

type PedidoResponse struct {
	ID            string  `json:"id"`
	Nombre        string  `json:"nombre"`
	Fecha         string  `json:"fecha"`
	Estado        string  `json:"estado"`
	IDUsuario     string  `json:"id_usuario"`
	NombreUsuario *string `json:"nombre_usuario"`
}

type PedidoListItem struct {
	ID                string          `json:"id"`
	NombrePedido      string          `json:"nombre_pedido"`
	Fecha             string          `json:"fecha"`
	Estado            string          `json:"estado"`
	NombreUsuario     *string         `json:"nombre_usuario"`
	TotalPagado       decimal.Decimal `json:"total_pagado"`
	CantidadProductos int             `json:"cantidad_productos"`
}

type PedidoListResponse struct {
	Data   []PedidoListItem `json:"data"`
	Total  int64            `json:"total"`
	Pagina int              `json:"pagina"`
	Limite int              `json:"limite"`
}
