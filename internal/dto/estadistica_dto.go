package dto

import "github.com/shopspring/decimal"

// IngresoDiario is one per-local-day revenue bucket.
type IngresoDiario struct {
	Fecha        string          `json:"fecha"`
	TotalPedidos int64           `json:"total_pedidos"`
	Total        decimal.Decimal `json:"total"`
}

type IngresoPorMetodo struct {
	Metodo   string          `json:"metodo"`
	Cantidad int64           `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
}

type ProductoVendido struct {
	Nombre        string          `json:"nombre"`
	CantidadTotal int64           `json:"cantidad_total"`
	IngresosTotal decimal.Decimal `json:"ingresos_total"`
}

type VentaPorHora struct {
	Hora         int             `json:"hora"`
	TotalPedidos int64           `json:"total_pedidos"`
	TotalVentas  decimal.Decimal `json:"total_ventas"`
}

type HorarioPico struct {
	DiaSemana     string          `json:"dia_semana"`
	Hora          int             `json:"hora"`
	TotalPedidos  int64           `json:"total_pedidos"`
	TotalIngresos decimal.Decimal `json:"total_ingresos"`
}

// PeriodoComparativa is one side of the week-over-week comparison.
type PeriodoComparativa struct {
	Periodo         string          `json:"periodo"`
	TotalPedidos    int64           `json:"total_pedidos"`
	TotalVentas     decimal.Decimal `json:"total_ventas"`
	UsuariosActivos int64           `json:"usuarios_activos"`
}

type ResumenGeneral struct {
	IngresosSemana         decimal.Decimal `json:"ingresos_semana"`
	PedidosSemana          int64           `json:"pedidos_semana"`
	UsuariosActivos        int64           `json:"usuarios_activos"`
	IngresosSemanaAnterior decimal.Decimal `json:"ingresos_semana_anterior"`
	PedidosSemanaAnterior  int64           `json:"pedidos_semana_anterior"`
	TicketPromedio         decimal.Decimal `json:"ticket_promedio"`
	VariacionIngresos      float64         `json:"variacion_ingresos"`
	VariacionPedidos       float64         `json:"variacion_pedidos"`
	PromedioDiario         decimal.Decimal `json:"promedio_diario"`
	MejorDia               *IngresoDiario  `json:"mejor_dia"`
	HoraPico               *HorarioPico    `json:"hora_pico"`
}

type TiempoCierre struct {
	TiempoPromedioMinutos *float64 `json:"tiempo_promedio_minutos"`
}

// DashboardResponse aggregates every statistic for the admin dashboard.
// Sections are gathered independently; a failed section is null and named
// in Errores so the rest of the dashboard still renders.
type DashboardResponse struct {
	ResumenGeneral       *ResumenGeneral      `json:"resumenGeneral"`
	IngresosSemanales    []IngresoDiario      `json:"ingresosSemanales"`
	TendenciaMensual     []IngresoDiario      `json:"tendenciaMensual"`
	IngresosPorMetodo    []IngresoPorMetodo   `json:"ingresosPorMetodo"`
	ProductosMasVendidos []ProductoVendido    `json:"productosMasVendidos"`
	VentasPorHora        []VentaPorHora       `json:"ventasPorHora"`
	ComparativaSemanal   []PeriodoComparativa `json:"comparativaSemanal"`
	TiempoPromedioCierre *TiempoCierre        `json:"tiempoPromedioCierre"`
	HorariosPicoIngresos []HorarioPico        `json:"horariosPicoIngresos"`

	Errores map[string]string `json:"errores,omitempty"`
}

type IngresosHistoricosResponse struct {
	Ingresos []IngresoDiario `json:"ingresos"`
	Total    int64           `json:"total"`
	Pagina   int             `json:"pagina"`
	Limite   int             `json:"limite"`
}
