package handler

import (
	"net/http"
	"strconv"

	"github.com/krilinxito/taqueando2.0/internal/service"

	"github.com/gin-gonic/gin"
)

type LogsHandler struct{ svc service.UserLogService }

func NewLogsHandler(svc service.UserLogService) *LogsHandler { return &LogsHandler{svc: svc} }

// Recientes lists the latest login events, newest first.
func (h *LogsHandler) Recientes(c *gin.Context) {
	limite, _ := strconv.Atoi(c.DefaultQuery("limite", "100"))
	resp, err := h.svc.Recientes(c.Request.Context(), limite)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
