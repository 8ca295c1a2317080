package user

import "time"

type User struct {
	ID           int64       `gorm:"primaryKey"`
	Name         string      `gorm:"column:name;not null"`
	Email        string      `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string      `gorm:"column:password_hash;not null"`
	EmployeeID   string      `gorm:"column:employee_id;uniqueIndex;not null"`
	Role         string      `gorm:"column:role;not null"`
	DepartmentID *int64      `gorm:"column:department_id"`
	Department   *Department `gorm:"foreignKey:DepartmentID"`
	LastLogin    *time.Time  `gorm:"column:last_login"`
	CreatedAt    time.Time   `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time   `gorm:"column:updated_at;default:now()"`
}

func (User) TableName() string {
	return "users"
}

type Department struct {
	ID    int64  `gorm:"primaryKey"`
	Name  string `gorm:"column:name;uniqueIndex;not null"`
	Users []User `gorm:"foreignKey:DepartmentID"`
}

func (Department) TableName() string {
	return "departments"
}
