package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estados of a reconciliation record, by the exact sign of Diferencia.
const (
	ArqueoCuadrado = "cuadrado"
	ArqueoSobrante = "sobrante"
	ArqueoFaltante = "faltante"
)

// Denominaciones is the fixed set of bill/coin values counted in an arqueo,
// largest first.
var Denominaciones = []int{200, 100, 50, 20, 10, 5, 2, 1}

// Arqueo is an append-only snapshot of a physical cash count reconciled
// against the system cash total. One row per reconciliation event, never
// updated or deleted — corrections require a new record.
type Arqueo struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`

	Billete200 int `gorm:"not null;default:0"`
	Billete100 int `gorm:"not null;default:0"`
	Billete50  int `gorm:"not null;default:0"`
	Billete20  int `gorm:"not null;default:0"`
	Billete10  int `gorm:"not null;default:0"`
	Moneda5    int `gorm:"not null;default:0"`
	Moneda2    int `gorm:"not null;default:0"`
	Moneda1    int `gorm:"not null;default:0"`

	TotalContado decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CajaChica    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TotalSistema decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Diferencia   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Estado       string          `gorm:"type:varchar(20);not null"`

	Observaciones *string
	UsuarioID     uuid.UUID `gorm:"type:uuid;not null"`
	Fecha         time.Time `gorm:"index;autoCreateTime"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (Arqueo) TableName() string { return "arqueos_caja" }

// Conteo returns the per-denomination count as a map keyed by value.
func (a *Arqueo) Conteo() map[int]int {
	return map[int]int{
		200: a.Billete200, 100: a.Billete100, 50: a.Billete50, 20: a.Billete20,
		10: a.Billete10, 5: a.Moneda5, 2: a.Moneda2, 1: a.Moneda1,
	}
}

// SetConteo assigns counted quantities from a per-denomination map.
// Missing denominations are treated as zero.
func (a *Arqueo) SetConteo(conteo map[int]int) {
	a.Billete200 = conteo[200]
	a.Billete100 = conteo[100]
	a.Billete50 = conteo[50]
	a.Billete20 = conteo[20]
	a.Billete10 = conteo[10]
	a.Moneda5 = conteo[5]
	a.Moneda2 = conteo[2]
	a.Moneda1 = conteo[1]
}
