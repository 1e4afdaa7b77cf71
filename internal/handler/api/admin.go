package api

import (
	"net/http"

	resdto "travel-broker/internal/handler/dto/response"
	"travel-broker/internal/handler/httperr"
	"travel-broker/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	reconcile commands.ReconcileCommands
}

func NewAdminHandler(reconcile commands.ReconcileCommands) *AdminHandler {
	return &AdminHandler{reconcile: reconcile}
}

// @Summary Reconcile stuck bookings
// @Description Retry the first status transition for bookings left in CREATED
// @Tags admin
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Success 200 {object} resdto.ReconcileResponse
// @Failure 500 {object} httperr.Response
// @Router /admin/reconcile [post]
func (h *AdminHandler) Reconcile(c *gin.Context) {
	report, err := h.reconcile.ReconcileStuckBookings(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Reconciliation failed", nil)
		return
	}
	res, err := resdto.FromReconcileReport(report)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
