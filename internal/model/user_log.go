package model

import (
	"time"

	"github.com/google/uuid"
)

// UserLog records one login event. Rows are written asynchronously by the
// worker pool so a slow insert never delays the login response.
type UserLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserAgent string
	IPAddress string
	LoginDate time.Time `gorm:"autoCreateTime"`

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
}

func (UserLog) TableName() string { return "user_logs" }
