package department

import (
	userDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/user"
)

// Department is the transport-safe view of a department.
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UserRef is the reduced projection of a member user.
type UserRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DepartmentWithUsers carries member refs for the detail endpoint. Members are
// reduced projections; they never nest their own relationships.
type DepartmentWithUsers struct {
	Department
	Users []UserRef `json:"users"`
}

func FromDataModel(d *userDatamodel.Department) *Department {
	return &Department{
		ID:   d.ID,
		Name: d.Name,
	}
}

func FromDataModelWithUsers(d *userDatamodel.Department) *DepartmentWithUsers {
	out := &DepartmentWithUsers{
		Department: *FromDataModel(d),
		Users:      make([]UserRef, 0, len(d.Users)),
	}
	for _, u := range d.Users {
		out.Users = append(out.Users, UserRef{ID: u.ID, Name: u.Name, Email: u.Email})
	}
	return out
}
