package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Metodos de pago accepted by the ledger.
const (
	MetodoEfectivo   = "efectivo"
	MetodoEfectivoPy = "efectivo-py"
	MetodoTarjeta    = "tarjeta"
	MetodoQR         = "qr"
	MetodoOnline     = "online"
)

// MetodosValidos lists the payment method enum in its canonical order.
var MetodosValidos = []string{
	MetodoEfectivo, MetodoEfectivoPy, MetodoTarjeta, MetodoQR, MetodoOnline,
}

// MetodoValido reports whether metodo belongs to the fixed enum.
func MetodoValido(metodo string) bool {
	for _, m := range MetodosValidos {
		if m == metodo {
			return true
		}
	}
	return false
}

// Pago is an immutable ledger entry: one payment applied against a tab.
// Entries are created via the payment service and never updated or deleted —
// cancellations and corrections are out of scope of the ledger itself.
type Pago struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Monto    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Metodo   string          `gorm:"type:varchar(20);not null"`
	Hora     time.Time       `gorm:"index;autoCreateTime"`
}
