package property

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/property/usecases"
	"rentora/internal/interfaces/http/middleware"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type PropertyHandler struct {
	createPropertyUC *usecases.CreatePropertyUseCase
	getPropertyUC    *usecases.GetPropertyUseCase
	listPropertiesUC *usecases.ListPropertiesUseCase
	approveUC        *usecases.ApprovePropertyUseCase
	rejectUC         *usecases.RejectPropertyUseCase
	deleteUC         *usecases.DeletePropertyUseCase
	transferUC       *usecases.TransferOwnershipUseCase
	logger           logger.Interface
}

func NewPropertyHandler(
	createPropertyUC *usecases.CreatePropertyUseCase,
	getPropertyUC *usecases.GetPropertyUseCase,
	listPropertiesUC *usecases.ListPropertiesUseCase,
	approveUC *usecases.ApprovePropertyUseCase,
	rejectUC *usecases.RejectPropertyUseCase,
	deleteUC *usecases.DeletePropertyUseCase,
	transferUC *usecases.TransferOwnershipUseCase,
	logger logger.Interface,
) *PropertyHandler {
	return &PropertyHandler{
		createPropertyUC: createPropertyUC,
		getPropertyUC:    getPropertyUC,
		listPropertiesUC: listPropertiesUC,
		approveUC:        approveUC,
		rejectUC:         rejectUC,
		deleteUC:         deleteUC,
		transferUC:       transferUC,
		logger:           logger,
	}
}

// CreateProperty handles POST /properties
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create property request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.createPropertyUC.Execute(c.Request.Context(), req.ToCommand(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "property listed successfully")
}

// GetProperty handles GET /properties/:id
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	propertyID, err := parsePropertyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.getPropertyUC.Execute(c.Request.Context(), usecases.GetPropertyCommand{
		Principal:  principal,
		PropertyID: propertyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListProperties handles GET /properties
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.listPropertiesUC.Execute(c.Request.Context(), usecases.ListPropertiesCommand{
		Principal:   principal,
		Mine:        c.Query("mine") == "true",
		PendingOnly: c.Query("pending") == "true",
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ApproveProperty handles POST /properties/:id/approve
func (h *PropertyHandler) ApproveProperty(c *gin.Context) {
	propertyID, err := parsePropertyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.approveUC.Execute(c.Request.Context(), usecases.ApprovePropertyCommand{
		Principal:  principal,
		PropertyID: propertyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "property approved", result)
}

// RejectProperty handles POST /properties/:id/reject
func (h *PropertyHandler) RejectProperty(c *gin.Context) {
	propertyID, err := parsePropertyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.rejectUC.Execute(c.Request.Context(), usecases.RejectPropertyCommand{
		Principal:  principal,
		PropertyID: propertyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "property rejected", result)
}

// DeleteProperty handles DELETE /properties/:id
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	propertyID, err := parsePropertyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	if err := h.deleteUC.Execute(c.Request.Context(), usecases.DeletePropertyCommand{
		Principal:  principal,
		PropertyID: propertyID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "property removed", nil)
}

// TransferOwnership handles POST /properties/:id/transfer-ownership
func (h *PropertyHandler) TransferOwnership(c *gin.Context) {
	propertyID, err := parsePropertyID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req TransferOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid transfer ownership request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.transferUC.Execute(c.Request.Context(), usecases.TransferOwnershipCommand{
		Principal:  principal,
		PropertyID: propertyID,
		NewOwnerID: req.NewOwnerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "property ownership transferred", result)
}
