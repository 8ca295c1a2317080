package postgres

import (
	"time"

	"github.com/frahmantamala/permit-management/internal/auth"
	userDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/user"
	"gorm.io/gorm"
)

// Repository implements auth.UserRepository using GORM.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) auth.UserRepository {
	return &Repository{db: db}
}

func (r *Repository) GetByEmail(email string) (*userDatamodel.User, error) {
	var u userDatamodel.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetByID(userID int64) (*userDatamodel.User, error) {
	var u userDatamodel.User
	if err := r.db.Where("id = ?", userID).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *Repository) EmployeeIDExists(employeeID string) (bool, error) {
	var count int64
	err := r.db.Model(&userDatamodel.User{}).Where("employee_id = ?", employeeID).Count(&count).Error
	return count > 0, err
}

func (r *Repository) Create(u *userDatamodel.User) error {
	return r.db.Create(u).Error
}

func (r *Repository) UpdateLastLogin(userID int64, at time.Time) error {
	return r.db.Model(&userDatamodel.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"last_login": at,
			"updated_at": time.Now(),
		}).Error
}
