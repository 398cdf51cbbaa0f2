package staff

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/staff/usecases"
	"rentora/internal/interfaces/http/middleware"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type StaffHandler struct {
	createStaffUC *usecases.CreateStaffUseCase
	removeStaffUC *usecases.RemoveStaffUseCase
	logger        logger.Interface
}

func NewStaffHandler(
	createStaffUC *usecases.CreateStaffUseCase,
	removeStaffUC *usecases.RemoveStaffUseCase,
	logger logger.Interface,
) *StaffHandler {
	return &StaffHandler{
		createStaffUC: createStaffUC,
		removeStaffUC: removeStaffUC,
		logger:        logger,
	}
}

// CreateStaff handles POST /staff
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create staff request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.createStaffUC.Execute(c.Request.Context(), req.ToCommand(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "staff member created")
}

// RemoveStaff handles DELETE /staff/:id
func (h *StaffHandler) RemoveStaff(c *gin.Context) {
	staffID, err := parseStaffID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.removeStaffUC.Execute(c.Request.Context(), usecases.RemoveStaffCommand{
		Principal: principal,
		StaffID:   staffID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "staff member removed", result)
}
