package domain

import "time"

// UserRole represents the access level of a user
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleStaff    UserRole = "staff"
	RoleManager  UserRole = "manager"
)

// User represents a registered user of the rental service
type User struct {
	ID          int64
	DisplayName string
	Email       string
	Role        UserRole
	CreatedAt   time.Time
}

// CanOperateAppointments returns true if the user may view and manage
// appointments of other users (персонал проката)
func (u *User) CanOperateAppointments() bool {
	return u.Role == RoleStaff || u.Role == RoleManager
}

// CanManageFleet returns true if the user may manage vehicles and promotions
func (u *User) CanManageFleet() bool {
	return u.Role == RoleManager
}
