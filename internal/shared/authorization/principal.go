package authorization

// Principal is the already-authenticated caller of a workflow operation.
// It is immutable for the duration of a request.
type Principal struct {
	ID   uint
	Role Role
}

// Relation describes how the target entity relates to candidate principals.
// A nil field means the action carries no constraint on that dimension
// (creation actions, for example, have no pre-existing target).
type Relation struct {
	OwnerID  *uint
	TenantID *uint
	StaffID  *uint
}

// NoTarget is the relation for actions that create a new entity.
func NoTarget() Relation {
	return Relation{}
}

// OwnedBy constrains the action to the owner of the target.
func OwnedBy(ownerID uint) Relation {
	return Relation{OwnerID: &ownerID}
}

// TenantOf constrains the action to the booking tenant.
func TenantOf(tenantID uint) Relation {
	return Relation{TenantID: &tenantID}
}

// StaffOf constrains the action to the assigned staff member.
func StaffOf(staffID uint) Relation {
	return Relation{StaffID: &staffID}
}
