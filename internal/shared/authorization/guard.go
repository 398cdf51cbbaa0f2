package authorization

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"

	"rentora/internal/shared/errors"
)

// Action names a workflow transition. Every use case consults the guard with
// its action before touching any state.
type Action string

const (
	ActionPropertyCreate Action = "property:create"
	ActionPropertyRead   Action = "property:read"
	ActionPropertyApprove Action = "property:approve"
	ActionPropertyReject  Action = "property:reject"
	ActionPropertyDelete  Action = "property:delete"
	ActionPropertyTransferOwner Action = "property:transfer_owner"

	ActionBookingCreate          Action = "booking:create"
	ActionBookingCompletePayment Action = "booking:complete_payment"
	ActionBookingConfirm         Action = "booking:confirm"
	ActionBookingCancel          Action = "booking:cancel"
	ActionBookingAddTicket       Action = "booking:add_support_ticket"
	ActionBookingResolveTicket   Action = "booking:resolve_support_ticket"

	ActionSubscriptionCreate Action = "subscription:create"
	ActionSubscriptionCancel Action = "subscription:cancel"

	ActionAssignmentAssign   Action = "assignment:assign"
	ActionAssignmentAccept   Action = "assignment:accept"
	ActionAssignmentStart    Action = "assignment:start"
	ActionAssignmentComplete Action = "assignment:complete"
	ActionAssignmentCancel   Action = "assignment:cancel"

	ActionReportSubmit      Action = "report:submit"
	ActionReportReview      Action = "report:review"
	ActionReportForward     Action = "report:forward"
	ActionReportAcknowledge Action = "report:acknowledge"

	ActionMaintenanceCreate      Action = "maintenance:create"
	ActionMaintenanceAssignStaff Action = "maintenance:assign_staff"
	ActionMaintenanceComplete    Action = "maintenance:complete"
	ActionMaintenanceCancel      Action = "maintenance:cancel"
	ActionMaintenanceFeedback    Action = "maintenance:feedback"

	ActionStaffCreate Action = "staff:create"
	ActionStaffRemove Action = "staff:remove"
)

const guardModel = `
[request_definition]
r = sub, act

[policy_definition]
p = sub, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.act == p.act
`

// guardPolicies is the static role-to-action table. Ownership constraints are
// enforced separately in Authorize; this table answers only "may this role
// ever perform this action".
var guardPolicies = [][]string{
	{"owner", string(ActionPropertyCreate)},
	{"owner", string(ActionPropertyRead)},
	{"tenant", string(ActionPropertyRead)},

	{"admin", string(ActionPropertyRead)},
	{"admin", string(ActionPropertyApprove)},
	{"admin", string(ActionPropertyReject)},
	{"admin", string(ActionPropertyDelete)},
	{"admin", string(ActionPropertyTransferOwner)},

	{"tenant", string(ActionBookingCreate)},
	{"tenant", string(ActionBookingCompletePayment)},
	{"admin", string(ActionBookingCompletePayment)},
	{"owner", string(ActionBookingConfirm)},
	{"admin", string(ActionBookingConfirm)},
	{"tenant", string(ActionBookingCancel)},
	{"admin", string(ActionBookingCancel)},
	{"tenant", string(ActionBookingAddTicket)},
	{"admin", string(ActionBookingAddTicket)},
	{"tenant", string(ActionBookingResolveTicket)},
	{"admin", string(ActionBookingResolveTicket)},

	{"owner", string(ActionSubscriptionCreate)},
	{"owner", string(ActionSubscriptionCancel)},
	{"admin", string(ActionSubscriptionCancel)},

	{"admin", string(ActionAssignmentAssign)},
	{"staff", string(ActionAssignmentAccept)},
	{"staff", string(ActionAssignmentStart)},
	{"staff", string(ActionAssignmentComplete)},
	{"admin", string(ActionAssignmentCancel)},

	{"staff", string(ActionReportSubmit)},
	{"admin", string(ActionReportReview)},
	{"admin", string(ActionReportForward)},
	{"owner", string(ActionReportAcknowledge)},

	{"owner", string(ActionMaintenanceCreate)},
	{"admin", string(ActionMaintenanceAssignStaff)},
	{"owner", string(ActionMaintenanceComplete)},
	{"staff", string(ActionMaintenanceComplete)},
	{"admin", string(ActionMaintenanceComplete)},
	{"owner", string(ActionMaintenanceCancel)},
	{"admin", string(ActionMaintenanceCancel)},
	{"owner", string(ActionMaintenanceFeedback)},

	{"admin", string(ActionStaffCreate)},
	{"admin", string(ActionStaffRemove)},
}

// Guard is the single authorization seam. Every pipeline transition calls
// Authorize before mutating state; a returned error is always a Forbidden
// AppError naming the rule that denied the request.
type Guard struct {
	enforcer *casbin.Enforcer
}

// NewGuard builds the guard with its compiled-in policy table.
func NewGuard() (*Guard, error) {
	m, err := casbinmodel.NewModelFromString(guardModel)
	if err != nil {
		return nil, fmt.Errorf("failed to build authorization model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to build authorization enforcer: %w", err)
	}

	if _, err := enforcer.AddPolicies(guardPolicies); err != nil {
		return nil, fmt.Errorf("failed to load authorization policies: %w", err)
	}

	return &Guard{enforcer: enforcer}, nil
}

// Authorize checks the role-action table, then the ownership constraint for
// non-admin roles. Admins bypass ownership but not the action table.
func (g *Guard) Authorize(p Principal, action Action, rel Relation) error {
	if !p.Role.IsValid() {
		return errors.NewForbiddenError(fmt.Sprintf("unknown role %q", p.Role))
	}

	allowed, err := g.enforcer.Enforce(p.Role.String(), string(action))
	if err != nil {
		return errors.NewInternalError("authorization check failed", err.Error())
	}
	if !allowed {
		return errors.NewForbiddenError(
			fmt.Sprintf("role %s may not perform %s", p.Role, action))
	}

	if p.Role.IsAdmin() {
		return nil
	}

	switch p.Role {
	case RoleOwner:
		if rel.OwnerID != nil && *rel.OwnerID != p.ID {
			return errors.NewForbiddenError(
				fmt.Sprintf("%s requires ownership of the target", action))
		}
	case RoleTenant:
		if rel.TenantID != nil && *rel.TenantID != p.ID {
			return errors.NewForbiddenError(
				fmt.Sprintf("%s is limited to the booking tenant", action))
		}
	case RoleStaff:
		if rel.StaffID != nil && *rel.StaffID != p.ID {
			return errors.NewForbiddenError(
				fmt.Sprintf("%s is limited to the assigned staff member", action))
		}
	}

	return nil
}
