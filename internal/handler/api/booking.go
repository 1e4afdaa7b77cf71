package api

import (
	"log/slog"
	"net/http"

	reqdto "travel-broker/internal/handler/dto/request"
	resdto "travel-broker/internal/handler/dto/response"
	"travel-broker/internal/handler/httperr"
	"travel-broker/internal/handler/middleware"
	"travel-broker/internal/pkg/errs"
	"travel-broker/internal/usecase/commands"
	"travel-broker/internal/usecase/queries"
	"travel-broker/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errActorMissing = errs.New("acting user missing from context")

type BookingHandler struct {
	statuses commands.BookingStatusCommands
	q        queries.BookingQueries
	sender   shared.NotificationSender
	logger   *slog.Logger
}

func NewBookingHandler(
	statuses commands.BookingStatusCommands,
	q queries.BookingQueries,
	sender shared.NotificationSender,
	logger *slog.Logger,
) *BookingHandler {
	return &BookingHandler{statuses: statuses, q: q, sender: sender, logger: logger}
}

// @Summary Get booking
// @Description Get a booking by ID
// @Tags bookings
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrBookingNotFound) {
			httperr.AbortWithCode(c, http.StatusNotFound, err, httperr.CodeNotFound, "Booking not found")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}

	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Change booking status
// @Description Apply one validated status transition and notify the affected parties
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param id path string true "Booking ID"
// @Param request body reqdto.TransitionBookingRequest true "Target status"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) Transition(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking id", nil)
		return
	}
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithCode(c, http.StatusUnauthorized, errActorMissing, httperr.CodeActorRequired, "Acting user required")
		return
	}

	var req reqdto.TransitionBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	target, err := req.TargetStatus()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status", nil)
		return
	}

	notes, err := h.statuses.Transition(c.Request.Context(), id, target, commands.TransitionContext{
		ActorID: actorID,
		Reason:  req.Reason,
	})
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrBookingNotFound):
			httperr.AbortWithCode(c, http.StatusNotFound, err, httperr.CodeNotFound, "Booking not found")
		case errs.Is(err, commands.ErrInvalidTransition):
			httperr.AbortWithCode(c, http.StatusUnprocessableEntity, err, httperr.CodeInvalidTransition, "Status transition not allowed")
		case errs.Is(err, commands.ErrStatusConflict):
			httperr.AbortWithCode(c, http.StatusConflict, err, httperr.CodeStatusConflict, "Booking was changed concurrently")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to change status", nil)
		}
		return
	}

	deliveries := dispatch(c.Request.Context(), h.sender, h.logger, notes)

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		return
	}
	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.TransitionResponse{Booking: res, Notifications: deliveries})
}
