package handler

import (
	"net/http"

	"github.com/krilinxito/taqueando2.0/internal/apierror"
	"github.com/krilinxito/taqueando2.0/internal/dto"
	"github.com/krilinxito/taqueando2.0/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContieneHandler struct{ svc service.ContieneService }

func NewContieneHandler(svc service.ContieneService) *ContieneHandler {
	return &ContieneHandler{svc: svc}
}

func (h *ContieneHandler) Agregar(c *gin.Context) {
	var req dto.AgregarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ContieneHandler) Anular(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.AnularItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensaje": "Producto anulado"})
}

func (h *ContieneHandler) PorPedido(c *gin.Context) {
	pedidoID, err := uuid.Parse(c.Param("id_pedido"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID de pedido inválido"))
		return
	}
	resp, err := h.svc.ItemsDePedido(c.Request.Context(), pedidoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
