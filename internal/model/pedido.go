package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados of a Pedido. The original system reused one literal ("cancelado")
// for both fully-paid and voided tabs; here the two meanings are distinct.
// "cancelado" is still accepted as a legacy filter alias for EstadoPagado.
const (
	EstadoPendiente = "pendiente"
	EstadoPagado    = "pagado"
	EstadoAnulado   = "anulado"
)

// Pedido is one customer tab. Created pending; closed by the settlement
// transition when its payments cover its total. Fecha is stored UTC.
type Pedido struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre    string    `gorm:"not null"`
	Fecha     time.Time `gorm:"index;autoCreateTime"`
	Estado    string    `gorm:"type:varchar(20);not null;default:'pendiente'"`
	UsuarioID uuid.UUID `gorm:"type:uuid;not null;index"`

	Usuario *Usuario     `gorm:"foreignKey:UsuarioID"`
	Items   []PedidoItem `gorm:"foreignKey:PedidoID"`
	Pagos   []Pago       `gorm:"foreignKey:PedidoID"`
}

// PedidoItem is one product line of a tab ("contiene" in the original
// schema). A voided line contributes zero to the order total but is kept
// for audit; voiding is one-way.
type PedidoItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PedidoID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductoID uuid.UUID `gorm:"type:uuid;not null"`
	Cantidad   int       `gorm:"not null"`
	Anulado    bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID"`
}

func (PedidoItem) TableName() string { return "contiene" }
