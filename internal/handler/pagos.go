package handler

import (
	"net/http"

	"github.com/krilinxito/taqueando2.0/internal/apierror"
	"github.com/krilinxito/taqueando2.0/internal/dto"
	"github.com/krilinxito/taqueando2.0/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PagosHandler struct{ svc service.PagoService }

func NewPagosHandler(svc service.PagoService) *PagosHandler { return &PagosHandler{svc: svc} }

func (h *PagosHandler) Registrar(c *gin.Context) {
	var req dto.AgregarPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarPago(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PagosHandler) PorPedido(c *gin.Context) {
	pedidoID, err := uuid.Parse(c.Param("id_pedido"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de pedido inválido"))
		return
	}
	resp, err := h.svc.PagosDePedido(c.Request.Context(), pedidoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
