package report

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/report/usecases"
	"rentora/internal/interfaces/http/middleware"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type ReportHandler struct {
	submitReportUC  *usecases.SubmitReportUseCase
	reviewReportUC  *usecases.ReviewReportUseCase
	forwardReportUC *usecases.ForwardReportUseCase
	acknowledgeUC   *usecases.AcknowledgeReportUseCase
	listReportsUC   *usecases.ListReportsUseCase
	logger          logger.Interface
}

func NewReportHandler(
	submitReportUC *usecases.SubmitReportUseCase,
	reviewReportUC *usecases.ReviewReportUseCase,
	forwardReportUC *usecases.ForwardReportUseCase,
	acknowledgeUC *usecases.AcknowledgeReportUseCase,
	listReportsUC *usecases.ListReportsUseCase,
	logger logger.Interface,
) *ReportHandler {
	return &ReportHandler{
		submitReportUC:  submitReportUC,
		reviewReportUC:  reviewReportUC,
		forwardReportUC: forwardReportUC,
		acknowledgeUC:   acknowledgeUC,
		listReportsUC:   listReportsUC,
		logger:          logger,
	}
}

// SubmitReport handles POST /reports
func (h *ReportHandler) SubmitReport(c *gin.Context) {
	var req SubmitReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid submit report request", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.submitReportUC.Execute(c.Request.Context(), req.ToCommand(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "inspection report submitted")
}

// ReviewReport handles POST /reports/:id/review
func (h *ReportHandler) ReviewReport(c *gin.Context) {
	reportID, err := parseReportID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.reviewReportUC.Execute(c.Request.Context(), usecases.ReviewReportCommand{
		Principal: principal,
		ReportID:  reportID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "report reviewed", result)
}

// ForwardReport handles POST /reports/:id/forward
func (h *ReportHandler) ForwardReport(c *gin.Context) {
	reportID, err := parseReportID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.forwardReportUC.Execute(c.Request.Context(), usecases.ForwardReportCommand{
		Principal: principal,
		ReportID:  reportID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "report forwarded to owner", result)
}

// AcknowledgeReport handles POST /reports/:id/acknowledge
func (h *ReportHandler) AcknowledgeReport(c *gin.Context) {
	reportID, err := parseReportID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	principal, _ := middleware.PrincipalFromContext(c)

	result, err := h.acknowledgeUC.Execute(c.Request.Context(), usecases.AcknowledgeReportCommand{
		Principal: principal,
		ReportID:  reportID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "report acknowledged", result)
}

// ListReports handles GET /reports
func (h *ReportHandler) ListReports(c *gin.Context) {
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

	result, err := h.listReportsUC.Execute(c.Request.Context(), usecases.ListReportsCommand{
		Principal:  principal,
		PropertyID: propertyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
