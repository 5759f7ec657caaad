package handler

import (
	"net/http"

	"github.com/krilinxito/taqueando2.0/internal/apierror"
	"github.com/krilinxito/taqueando2.0/internal/dto"
	"github.com/krilinxito/taqueando2.0/internal/middleware"
	"github.com/krilinxito/taqueando2.0/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ArqueosHandler struct{ svc service.ArqueoService }

func NewArqueosHandler(svc service.ArqueoService) *ArqueosHandler {
	return &ArqueosHandler{svc: svc}
}

func (h *ArqueosHandler) Crear(c *gin.Context) {
	var req dto.CrearArqueoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	usuarioID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, apierror.New("Token mal formado"))
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), usuarioID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ArqueosHandler) PorFecha(c *gin.Context) {
	resp, err := h.svc.PorFecha(c.Request.Context(), c.Query("fecha"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ArqueosHandler) Ultimo(c *gin.Context) {
	resp, err := h.svc.Ultimo(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
