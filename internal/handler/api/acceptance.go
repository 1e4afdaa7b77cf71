package api

import (
	"log/slog"
	"net/http"

	resdto "travel-broker/internal/handler/dto/response"
	"travel-broker/internal/handler/httperr"
	"travel-broker/internal/handler/middleware"
	"travel-broker/internal/usecase/commands"
	"travel-broker/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AcceptanceHandler struct {
	cmds   commands.AcceptanceCommands
	sender shared.NotificationSender
	logger *slog.Logger
}

func NewAcceptanceHandler(cmds commands.AcceptanceCommands, sender shared.NotificationSender, logger *slog.Logger) *AcceptanceHandler {
	return &AcceptanceHandler{cmds: cmds, sender: sender, logger: logger}
}

// @Summary Show offer confirmation
// @Description Run acceptance prechecks and return the confirmation prompt without changing anything
// @Tags offers
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param id path string true "Offer ID"
// @Success 200 {object} resdto.ConfirmationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} resdto.ConfirmationResponse
// @Failure 404 {object} resdto.ConfirmationResponse
// @Failure 409 {object} resdto.ConfirmationResponse
// @Router /offers/{id}/acceptance [get]
func (h *AcceptanceHandler) Show(c *gin.Context) {
	offerID, actorID, ok := h.params(c)
	if !ok {
		return
	}

	prompt, err := h.cmds.ShowConfirmation(c.Request.Context(), offerID, actorID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load offer", nil)
		return
	}

	res, err := resdto.FromConfirmationPrompt(prompt)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(outcomeStatus(prompt.Outcome), res)
}

// @Summary Accept offer
// @Description Accept an offer, create the booking and notify the agency
// @Tags offers
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param id path string true "Offer ID"
// @Success 201 {object} resdto.AcceptanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} resdto.AcceptanceResponse
// @Failure 404 {object} resdto.AcceptanceResponse
// @Failure 409 {object} resdto.AcceptanceResponse
// @Failure 500 {object} httperr.Response
// @Router /offers/{id}/acceptance [post]
func (h *AcceptanceHandler) Accept(c *gin.Context) {
	offerID, actorID, ok := h.params(c)
	if !ok {
		return
	}

	result, err := h.cmds.ConfirmAcceptance(c.Request.Context(), offerID, actorID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to accept offer", nil)
		return
	}

	if result.Outcome != commands.OutcomeAccepted {
		c.JSON(outcomeStatus(result.Outcome), resdto.FromAcceptanceResult(result, nil))
		return
	}

	deliveries := dispatch(c.Request.Context(), h.sender, h.logger, result.Outbound)
	c.JSON(http.StatusCreated, resdto.FromAcceptanceResult(result, deliveries))
}

func (h *AcceptanceHandler) params(c *gin.Context) (offerID, actorID uuid.UUID, ok bool) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid offer id", nil)
		return uuid.Nil, uuid.Nil, false
	}
	actorID, ok = middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errActorMissing, "Acting user required", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return offerID, actorID, true
}

func outcomeStatus(o commands.AcceptanceOutcome) int {
	switch o {
	case commands.OutcomeAccepted:
		return http.StatusCreated
	case commands.OutcomeReadyToConfirm:
		return http.StatusOK
	case commands.OutcomeOfferNotFound:
		return http.StatusNotFound
	case commands.OutcomeNotAuthorized:
		return http.StatusForbidden
	case commands.OutcomeAlreadyBooked, commands.OutcomeAlreadyAccepted, commands.OutcomeOfferUnavailable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
