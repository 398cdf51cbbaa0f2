package maintenance

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/maintenance/usecases"
	"rentora/internal/interfaces/http/middleware"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type MaintenanceHandler struct {
	createTicketUC *usecases.CreateTicketUseCase
	assignStaffUC  *usecases.AssignTicketStaffUseCase
	completeUC     *usecases.CompleteTicketUseCase
	cancelUC       *usecases.CancelTicketUseCase
	addFeedbackUC  *usecases.AddFeedbackUseCase
	listTicketsUC  *usecases.ListTicketsUseCase
	logger         logger.Interface
}

func NewMaintenanceHandler(
	createTicketUC *usecases.CreateTicketUseCase,
	assignStaffUC *usecases.AssignTicketStaffUseCase,
	completeUC *usecases.CompleteTicketUseCase,
	cancelUC *usecases.CancelTicketUseCase,
	addFeedbackUC *usecases.AddFeedbackUseCase,
	listTicketsUC *usecases.ListTicketsUseCase,
	logger logger.Interface,
) *MaintenanceHandler {
	return &MaintenanceHandler{
		createTicketUC: createTicketUC,
		assignStaffUC:  assignStaffUC,
		completeUC:     completeUC,
		cancelUC:       cancelUC,
		addFeedbackUC:  addFeedbackUC,
		listTicketsUC:  listTicketsUC,
		logger:         logger,
	}
}

// CreateTicket handles POST /maintenance
func (h *MaintenanceHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create ticket request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "maintenance ticket opened")
}

// AssignStaff handles POST /maintenance/:id/assign
func (h *MaintenanceHandler) AssignStaff(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.assignStaffUC.Execute(c.Request.Context(), usecases.AssignTicketStaffCommand{
		Principal: principal,
		TicketID:  ticketID,
		StaffID:   req.StaffID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "staff assigned to ticket", result)
}

// CompleteTicket handles POST /maintenance/:id/complete
func (h *MaintenanceHandler) CompleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompleteTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.completeUC.Execute(c.Request.Context(), usecases.CompleteTicketCommand{
		Principal:       principal,
		TicketID:        ticketID,
		CompletionNotes: req.CompletionNotes,
		ActualCost:      req.ActualCost,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket completed", result)
}

// CancelTicket handles POST /maintenance/:id/cancel
func (h *MaintenanceHandler) CancelTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.cancelUC.Execute(c.Request.Context(), usecases.CancelTicketCommand{
		Principal: principal,
		TicketID:  ticketID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket cancelled", result)
}

// AddFeedback handles POST /maintenance/:id/feedback
func (h *MaintenanceHandler) AddFeedback(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.addFeedbackUC.Execute(c.Request.Context(), usecases.AddFeedbackCommand{
		Principal: principal,
		TicketID:  ticketID,
		Feedback:  req.Feedback,
		Rating:    req.Rating,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "feedback recorded", result)
}

// ListTickets handles GET /maintenance
func (h *MaintenanceHandler) ListTickets(c *gin.Context) {
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

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsCommand{
		Principal:  principal,
		PropertyID: propertyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
