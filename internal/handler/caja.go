package handler

import (
	"net/http"

	"github.com/krilinxito/taqueando2.0/internal/service"

	"github.com/gin-gonic/gin"
)

type CajaHandler struct{ svc service.CajaService }

func NewCajaHandler(svc service.CajaService) *CajaHandler { return &CajaHandler{svc: svc} }

// Resumen answers with today's cash summary.
func (h *CajaHandler) Resumen(c *gin.Context) {
	resp, err := h.svc.ResumenDeHoy(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResumenPorFecha answers with the cash summary of ?fecha=YYYY-MM-DD.
// A day with no activity yields a zero summary, not an error.
func (h *CajaHandler) ResumenPorFecha(c *gin.Context) {
	resp, err := h.svc.ResumenPorFecha(c.Request.Context(), c.Query("fecha"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
