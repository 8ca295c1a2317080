package department

import "errors"

// CreateDepartmentDTO is the payload for creating a department.
type CreateDepartmentDTO struct {
	Name string `json:"name"`
}

func (dto CreateDepartmentDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("name is required")
	}
	if len(dto.Name) > 100 {
		return errors.New("name must be less than 100 characters")
	}
	return nil
}

// UpdateDepartmentDTO renames a department.
type UpdateDepartmentDTO struct {
	Name string `json:"name"`
}

func (dto UpdateDepartmentDTO) Validate() error {
	return CreateDepartmentDTO(dto).Validate()
}
