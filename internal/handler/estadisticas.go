package handler

import (
	"net/http"
	"strconv"

	"github.com/krilinxito/taqueando2.0/internal/service"

	"github.com/gin-gonic/gin"
)

type EstadisticasHandler struct{ svc service.EstadisticaService }

func NewEstadisticasHandler(svc service.EstadisticaService) *EstadisticasHandler {
	return &EstadisticasHandler{svc: svc}
}

// Dashboard returns the composite statistics object. Sections that failed
// are null and named in "errores"; the response is still 200.
func (h *EstadisticasHandler) Dashboard(c *gin.Context) {
	resp, err := h.svc.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstadisticasHandler) IngresosHistoricos(c *gin.Context) {
	pagina, _ := strconv.Atoi(c.DefaultQuery("pagina", "1"))
	limite, _ := strconv.Atoi(c.DefaultQuery("limite", "10"))

	resp, err := h.svc.IngresosHistoricos(c.Request.Context(), pagina, limite)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
