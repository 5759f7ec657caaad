package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/krilinxito/taqueando2.0/internal/dto"
	"github.com/krilinxito/taqueando2.0/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// Un monto de cero pasa el binding: la regla "monto > 0" es de negocio y la
// decide el servicio con un 400, no el validador con un 422.
func TestMontoCeroPasaLaValidacionDeBinding(t *testing.T) {
	req := dto.AgregarPagoRequest{
		IDPedido: uuid.NewString(),
		Monto:    decimal.Zero,
		Metodo:   "efectivo",
	}
	assert.NoError(t, validate.Struct(req))

	// Los demás campos siguen siendo obligatorios.
	assert.Error(t, validate.Struct(dto.AgregarPagoRequest{Monto: decimal.Zero}))
}

func TestMontoInvalidoRespondeCuatrocientos(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, service.ErrMontoInvalido)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
