package user

import (
	"fmt"
	"strings"
	"time"

	"rentora/internal/shared/authorization"
)

// User is an account aggregate covering all four roles. Staff members
// additionally carry a staff code and the roster of properties they are
// assigned to.
type User struct {
	id                  uint
	name                string
	email               string
	passwordHash        string
	role                authorization.Role
	phone               string
	staffCode           string
	assignedPropertyIDs []uint
	active              bool
	version             int
	createdAt           time.Time
	updatedAt           time.Time
}

// NewUser creates an active account. The password arrives already hashed.
func NewUser(name, email, passwordHash string, role authorization.Role, phone string, now time.Time) (*User, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("name is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		name:         name,
		email:        strings.ToLower(email),
		passwordHash: passwordHash,
		role:         role,
		phone:        phone,
		active:       true,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// NewStaff creates an active staff account with its staff code.
func NewStaff(name, email, passwordHash, phone, staffCode string, now time.Time) (*User, error) {
	if !strings.HasPrefix(staffCode, "STF") {
		return nil, fmt.Errorf("invalid staff code: %s", staffCode)
	}
	u, err := NewUser(name, email, passwordHash, authorization.RoleStaff, phone, now)
	if err != nil {
		return nil, err
	}
	u.staffCode = staffCode
	return u, nil
}

// ReconstructUser rebuilds a user from persistence.
func ReconstructUser(
	id uint,
	name, email, passwordHash string,
	role authorization.Role,
	phone, staffCode string,
	assignedPropertyIDs []uint,
	active bool,
	version int,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:                  id,
		name:                name,
		email:               email,
		passwordHash:        passwordHash,
		role:                role,
		phone:               phone,
		staffCode:           staffCode,
		assignedPropertyIDs: assignedPropertyIDs,
		active:              active,
		version:             version,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (u *User) ID() uint                    { return u.id }
func (u *User) Name() string                { return u.name }
func (u *User) Email() string               { return u.email }
func (u *User) PasswordHash() string        { return u.passwordHash }
func (u *User) Role() authorization.Role    { return u.role }
func (u *User) Phone() string               { return u.phone }
func (u *User) StaffCode() string           { return u.staffCode }
func (u *User) AssignedPropertyIDs() []uint { return u.assignedPropertyIDs }
func (u *User) IsActive() bool              { return u.active }
func (u *User) Version() int                { return u.version }
func (u *User) CreatedAt() time.Time        { return u.createdAt }
func (u *User) UpdatedAt() time.Time        { return u.updatedAt }

// SetID sets the user ID (only for persistence layer use).
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// AddAssignedProperty adds the property to the staff roster. Adding a
// property already on the roster is a no-op.
func (u *User) AddAssignedProperty(propertyID uint) error {
	if !u.role.IsStaff() {
		return fmt.Errorf("only staff carry a property roster")
	}
	for _, id := range u.assignedPropertyIDs {
		if id == propertyID {
			return nil
		}
	}
	u.assignedPropertyIDs = append(u.assignedPropertyIDs, propertyID)
	u.touch()
	return nil
}

// RemoveAssignedProperty drops the property from the staff roster.
func (u *User) RemoveAssignedProperty(propertyID uint) error {
	if !u.role.IsStaff() {
		return fmt.Errorf("only staff carry a property roster")
	}
	for i, id := range u.assignedPropertyIDs {
		if id == propertyID {
			u.assignedPropertyIDs = append(u.assignedPropertyIDs[:i], u.assignedPropertyIDs[i+1:]...)
			u.touch()
			return nil
		}
	}
	return nil
}

// Deactivate disables the account without deleting its history.
func (u *User) Deactivate() {
	u.active = false
	u.touch()
}

// UpdateProfile changes the mutable contact fields.
func (u *User) UpdateProfile(name, phone string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	u.name = name
	u.phone = phone
	u.touch()
	return nil
}

// ChangePassword replaces the stored hash.
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = passwordHash
	u.touch()
	return nil
}

func (u *User) touch() {
	u.updatedAt = time.Now()
	u.version++
}
