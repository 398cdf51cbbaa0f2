package assignment

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/assignment/usecases"
	"rentora/internal/shared/authorization"
	"rentora/internal/shared/errors"
)

type AssignStaffRequest struct {
	PropertyID          uint   `json:"property_id" binding:"required"`
	StaffID             uint   `json:"staff_id" binding:"required"`
	InspectionFrequency string `json:"inspection_frequency" binding:"required,oneof=monthly quarterly biannual annual"`
	Description         string `json:"description" binding:"omitempty,max=1000"`
	Instructions        string `json:"instructions" binding:"omitempty,max=1000"`
}

func (r *AssignStaffRequest) ToCommand(principal authorization.Principal) usecases.AssignStaffCommand {
	return usecases.AssignStaffCommand{
		Principal:           principal,
		PropertyID:          r.PropertyID,
		StaffID:             r.StaffID,
		InspectionFrequency: r.InspectionFrequency,
		Description:         r.Description,
		Instructions:        r.Instructions,
	}
}

type CompleteAssignmentRequest struct {
	StaffNotes string `json:"staff_notes" binding:"omitempty,max=1000"`
}

func parseAssignmentID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("invalid assignment id")
	}
	return uint(id), nil
}
