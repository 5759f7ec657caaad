package dto

import "github.com/shopspring/decimal"

// DetalleMetodo is one row of the per-method breakdown of a day.
// Porcentaje is pre-formatted with two decimals ("0.00" on an empty day).
type DetalleMetodo struct {
	Metodo     string          `json:"metodo"`
	Total      decimal.Decimal `json:"total"`
	Cantidad   int64           `json:"cantidad"`
	Porcentaje string          `json:"porcentaje"`
}

// PagoDetalle is one itemized payment with its order/user context.
// NombreUsuario is null when the owning user no longer exists.
type PagoDetalle struct {
	ID            string          `json:"id"`
	IDPedido      string          `json:"idPedido"`
	Monto         decimal.Decimal `json:"monto"`
	Metodo        string          `json:"metodo"`
	Hora          string          `json:"hora"`
	EstadoPedido  string          `json:"estadoPedido"`
	NombrePedido  string          `json:"nombrePedido"`
	NombreUsuario *string         `json:"nombreUsuario"`
}

type EstadisticasResumen struct {
	PromedioPorPedido    decimal.Decimal `json:"promedioPorPedido"`
	MetodoPagoMasUsado   string          `json:"metodoPagoMasUsado"`
	MetodoPagoMayorMonto string          `json:"metodoPagoMayorMonto"`
}

// ResumenCajaResponse is the computed cash summary of one local day.
// It is derived, never persisted.
type ResumenCajaResponse struct {
	Fecha        string          `json:"fecha"`
	TotalDia     decimal.Decimal `json:"totalDia"`
	TotalPedidos int64           `json:"totalPedidos"`

	TotalEfectivo   decimal.Decimal `json:"totalEfectivo"`
	TotalTarjeta    decimal.Decimal `json:"totalTarjeta"`
	TotalQR         decimal.Decimal `json:"totalQR"`
	TotalOnline     decimal.Decimal `json:"totalOnline"`
	TotalEfectivoPy decimal.Decimal `json:"totalEfectivoPy"`

	DetallesPorMetodo []DetalleMetodo     `json:"detallesPorMetodo"`
	Pagos             []PagoDetalle       `json:"pagos"`
	Estadisticas      EstadisticasResumen `json:"estadisticas"`
}
