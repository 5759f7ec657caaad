package dto

import "github.com/shopspring/decimal"

// CrearArqueoRequest carries a physical cash count. Conteo is keyed by
// denomination value ("200" … "1"). TotalContado, Diferencia and Estado are
// recomputed server-side regardless of what the client sends; TotalSistema
// is honored when present (snapshot at count time) and derived from the
// current day's cash total otherwise.
type CrearArqueoRequest struct {
	Conteo        map[string]int   `json:"conteo"       validate:"required"`
	TotalContado  *decimal.Decimal `json:"totalContado"`
	CajaChica     decimal.Decimal  `json:"cajaChica"    validate:"min=0"`
	TotalSistema  *decimal.Decimal `json:"totalSistema"`
	Diferencia    *decimal.Decimal `json:"diferencia"`
	Estado        string           `json:"estado"`
	Observaciones *string          `json:"observaciones"`
}

type CrearArqueoResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

type ArqueoResponse struct {
	ID            string          `json:"id"`
	Conteo        map[string]int  `json:"conteo"`
	TotalContado  decimal.Decimal `json:"totalContado"`
	CajaChica     decimal.Decimal `json:"cajaChica"`
	TotalSistema  decimal.Decimal `json:"totalSistema"`
	Diferencia    decimal.Decimal `json:"diferencia"`
	Estado        string          `json:"estado"`
	Observaciones *string         `json:"observaciones"`
	NombreUsuario *string         `json:"nombre_usuario"`
	Fecha         string          `json:"fecha"`
}
