package assignment

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/assignment/usecases"
	"rentora/internal/interfaces/http/middleware"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type AssignmentHandler struct {
	assignStaffUC *usecases.AssignStaffUseCase
	acceptUC      *usecases.AcceptAssignmentUseCase
	startUC       *usecases.StartAssignmentUseCase
	completeUC    *usecases.CompleteAssignmentUseCase
	cancelUC      *usecases.CancelAssignmentUseCase
	listUC        *usecases.ListAssignmentsUseCase
	logger        logger.Interface
}

func NewAssignmentHandler(
	assignStaffUC *usecases.AssignStaffUseCase,
	acceptUC *usecases.AcceptAssignmentUseCase,
	startUC *usecases.StartAssignmentUseCase,
	completeUC *usecases.CompleteAssignmentUseCase,
	cancelUC *usecases.CancelAssignmentUseCase,
	listUC *usecases.ListAssignmentsUseCase,
	logger logger.Interface,
) *AssignmentHandler {
	return &AssignmentHandler{
		assignStaffUC: assignStaffUC,
		acceptUC:      acceptUC,
		startUC:       startUC,
		completeUC:    completeUC,
		cancelUC:      cancelUC,
		listUC:        listUC,
		logger:        logger,
	}
}

// AssignStaff handles POST /assignments
func (h *AssignmentHandler) AssignStaff(c *gin.Context) {
	var req AssignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid assign staff request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.assignStaffUC.Execute(c.Request.Context(), req.ToCommand(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "staff assigned to property")
}

// AcceptAssignment handles POST /assignments/:id/accept
func (h *AssignmentHandler) AcceptAssignment(c *gin.Context) {
	assignmentID, err := parseAssignmentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.acceptUC.Execute(c.Request.Context(), usecases.AcceptAssignmentCommand{
		Principal:    principal,
		AssignmentID: assignmentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "assignment accepted", result)
}

// StartAssignment handles POST /assignments/:id/start
func (h *AssignmentHandler) StartAssignment(c *gin.Context) {
	assignmentID, err := parseAssignmentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.startUC.Execute(c.Request.Context(), usecases.StartAssignmentCommand{
		Principal:    principal,
		AssignmentID: assignmentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "assignment started", result)
}

// CompleteAssignment handles POST /assignments/:id/complete
func (h *AssignmentHandler) CompleteAssignment(c *gin.Context) {
	assignmentID, err := parseAssignmentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompleteAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.completeUC.Execute(c.Request.Context(), usecases.CompleteAssignmentCommand{
		Principal:    principal,
		AssignmentID: assignmentID,
		StaffNotes:   req.StaffNotes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "assignment completed", result)
}

// CancelAssignment handles POST /assignments/:id/cancel
func (h *AssignmentHandler) CancelAssignment(c *gin.Context) {
	assignmentID, err := parseAssignmentID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.cancelUC.Execute(c.Request.Context(), usecases.CancelAssignmentCommand{
		Principal:    principal,
		AssignmentID: assignmentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "assignment cancelled", result)
}

// ListAssignments handles GET /assignments
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	principal, _ := middleware.PrincipalFromContext(c)

	var staffID uint
	if raw := c.Query("staff_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid staff_id")
			return
		}
		staffID = uint(parsed)
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListAssignmentsCommand{
		Principal: principal,
		StaffID:   staffID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
