package personnel

import "time"

type Contractor struct {
	ID           int64  `gorm:"primaryKey"`
	CompanyName  string `gorm:"column:company_name;not null"`
	ContactEmail string `gorm:"column:contact_email;uniqueIndex;not null"`
	ContactPhone string `gorm:"column:contact_phone"`
}

func (Contractor) TableName() string {
	return "contractors"
}

type PersonalInfo struct {
	ID           int64       `gorm:"primaryKey"`
	FullName     string      `gorm:"column:full_name;not null"`
	NationalID   string      `gorm:"column:national_id;uniqueIndex;not null"`
	IsAllowed    bool        `gorm:"column:is_allowed;not null;default:false"`
	ContractorID *int64      `gorm:"column:contractor_id"`
	Contractor   *Contractor `gorm:"foreignKey:ContractorID"`
	CreatedAt    time.Time   `gorm:"column:created_at;default:now()"`
	UpdatedAt    time.Time   `gorm:"column:updated_at;default:now()"`
}

func (PersonalInfo) TableName() string {
	return "personal_infos"
}
