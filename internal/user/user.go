package user

import (
	"time"

	userDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/user"
)

// User is the transport-safe view of a user. The password hash stays in the
// datamodel and never reaches this type.
type User struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	EmployeeID string         `json:"employee_id"`
	Role       string         `json:"role"`
	Department *DepartmentRef `json:"department,omitempty"`
	LastLogin  *time.Time     `json:"last_login,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// DepartmentRef is the reduced projection used when a user nests its department.
type DepartmentRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func FromDataModel(u *userDatamodel.User) *User {
	view := &User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		EmployeeID: u.EmployeeID,
		Role:       u.Role,
		LastLogin:  u.LastLogin,
		CreatedAt:  u.CreatedAt,
	}
	if u.Department != nil {
		view.Department = &DepartmentRef{ID: u.Department.ID, Name: u.Department.Name}
	}
	return view
}
