package report

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/report/usecases"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
)

type SubmitReportRequest struct {
	AssignmentID           uint   `json:"assignment_id" binding:"required"`
	Condition              string `json:"condition" binding:"required"`
	Notes                  string `json:"notes" binding:"required,max=2000"`
	MaintenanceRecommended bool   `json:"maintenance_recommended"`
	MaintenanceDetails     string `json:"maintenance_details" binding:"omitempty,max=2000"`
}

func (r *SubmitReportRequest) ToCommand(principal authorization.Principal) usecases.SubmitReportCommand {
	return usecases.SubmitReportCommand{
		Principal:              principal,
		AssignmentID:           r.AssignmentID,
		Condition:              r.Condition,
		Notes:                  r.Notes,
		MaintenanceRecommended: r.MaintenanceRecommended,
		MaintenanceDetails:     r.MaintenanceDetails,
	}
}

func parseReportID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid report id")
	}
	return uint(id), nil
}
