package postgres

import (
	userDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/user"
	"github.com/frahmantamala/permit-management/internal/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByID(userID int64) (*userDatamodel.User, error) {
	var u userDatamodel.User
	if err := r.db.Preload("Department").Where("id = ?", userID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) List(limit, offset int) ([]*userDatamodel.User, error) {
	var users []*userDatamodel.User
	err := r.db.Preload("Department").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	return users, err
}

func (r *UserRepository) AssignDepartment(userID int64, departmentID *int64) error {
	res := r.db.Model(&userDatamodel.User{}).
		Where("id = ?", userID).
		Update("department_id", departmentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
