package postgres

import (
	userDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/user"
	"github.com/frahmantamala/permit-management/internal/department"
	"gorm.io/gorm"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) department.Repository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) Create(d *userDatamodel.Department) error {
	return r.db.Create(d).Error
}

func (r *DepartmentRepository) GetByID(id int64) (*userDatamodel.Department, error) {
	var d userDatamodel.Department
	if err := r.db.Preload("Users").Where("id = ?", id).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DepartmentRepository) List() ([]*userDatamodel.Department, error) {
	var departments []*userDatamodel.Department
	err := r.db.Order("id ASC").Find(&departments).Error
	return departments, err
}

func (r *DepartmentRepository) UpdateName(id int64, name string) error {
	res := r.db.Model(&userDatamodel.Department{}).Where("id = ?", id).Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *DepartmentRepository) Delete(id int64) error {
	res := r.db.Delete(&userDatamodel.Department{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
