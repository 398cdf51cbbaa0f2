package booking

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/booking/usecases"
	"rentora/internal/interfaces/http/middleware"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type BookingHandler struct {
	createBookingUC   *usecases.CreateBookingUseCase
	completePaymentUC *usecases.CompletePaymentUseCase
	confirmBookingUC  *usecases.ConfirmBookingUseCase
	cancelBookingUC   *usecases.CancelBookingUseCase
	listBookingsUC    *usecases.ListBookingsUseCase
	addTicketUC       *usecases.AddSupportTicketUseCase
	resolveTicketUC   *usecases.ResolveSupportTicketUseCase
	logger            logger.Interface
}

func NewBookingHandler(
	createBookingUC *usecases.CreateBookingUseCase,
	completePaymentUC *usecases.CompletePaymentUseCase,
	confirmBookingUC *usecases.ConfirmBookingUseCase,
	cancelBookingUC *usecases.CancelBookingUseCase,
	listBookingsUC *usecases.ListBookingsUseCase,
	addTicketUC *usecases.AddSupportTicketUseCase,
	resolveTicketUC *usecases.ResolveSupportTicketUseCase,
	logger logger.Interface,
) *BookingHandler {
	return &BookingHandler{
		createBookingUC:   createBookingUC,
		completePaymentUC: completePaymentUC,
		confirmBookingUC:  confirmBookingUC,
		cancelBookingUC:   cancelBookingUC,
		listBookingsUC:    listBookingsUC,
		addTicketUC:       addTicketUC,
		resolveTicketUC:   resolveTicketUC,
		logger:            logger,
	}
}

// CreateBooking handles POST /bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create booking request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.createBookingUC.Execute(c.Request.Context(), req.ToCommand(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "booking requested successfully")
}

// CompletePayment handles POST /bookings/:id/payment
func (h *BookingHandler) CompletePayment(c *gin.Context) {
	bookingID, err := parseBookingID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompletePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.completePaymentUC.Execute(c.Request.Context(), usecases.CompletePaymentCommand{
		Principal:     principal,
		BookingID:     bookingID,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment recorded", result)
}

// ConfirmBooking handles POST /bookings/:id/confirm
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	bookingID, err := parseBookingID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.confirmBookingUC.Execute(c.Request.Context(), usecases.ConfirmBookingCommand{
		Principal: principal,
		BookingID: bookingID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "booking confirmed", result)
}

// CancelBooking handles POST /bookings/:id/cancel
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	bookingID, err := parseBookingID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.cancelBookingUC.Execute(c.Request.Context(), usecases.CancelBookingCommand{
		Principal: principal,
		BookingID: bookingID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "booking cancelled", result)
}

// ListBookings handles GET /bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	principal, _ := middleware.PrincipalFromContext(c)

	var propertyID uint
	if raw := c.Query("property_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid property_id")
			return
		}
		propertyID = uint(parsed)
	}

	result, err := h.listBookingsUC.Execute(c.Request.Context(), usecases.ListBookingsCommand{
		Principal:  principal,
		PropertyID: propertyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddSupportTicket handles POST /bookings/:id/tickets
func (h *BookingHandler) AddSupportTicket(c *gin.Context) {
	bookingID, err := parseBookingID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddSupportTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.addTicketUC.Execute(c.Request.Context(), usecases.AddSupportTicketCommand{
		Principal:   principal,
		BookingID:   bookingID,
		Kind:        req.Kind,
		Description: req.Description,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "support ticket opened")
}

// ResolveSupportTicket handles POST /bookings/:id/tickets/:index/resolve
func (h *BookingHandler) ResolveSupportTicket(c *gin.Context) {
	bookingID, err := parseBookingID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	ticketIndex, err := parseTicketIndex(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.resolveTicketUC.Execute(c.Request.Context(), usecases.ResolveSupportTicketCommand{
		Principal:   principal,
		BookingID:   bookingID,
		TicketIndex: ticketIndex,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "support ticket resolved", result)
}
