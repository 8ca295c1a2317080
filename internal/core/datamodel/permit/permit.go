package permit

import (
	"time"

	"github.com/frahmantamala/permit-management/internal/core/datamodel/personnel"
	"github.com/frahmantamala/permit-management/internal/core/datamodel/station"
	"github.com/frahmantamala/permit-management/internal/core/datamodel/user"
)

// Permit owns both many-to-many associations. Reverse navigation (permits for a
// station, permits covering a person) goes through repository queries against
// the join tables instead of back-reference fields, which would cycle.
type Permit struct {
	ID            int64                    `gorm:"primaryKey"`
	ControlNumber string                   `gorm:"column:control_number;uniqueIndex;not null"`
	Type          string                   `gorm:"column:type;not null"`
	Status        string                   `gorm:"column:status;not null;default:pending"`
	StartDate     time.Time                `gorm:"column:start_date;not null"`
	EndDate       time.Time                `gorm:"column:end_date;not null"`
	RequesterID   int64                    `gorm:"column:requester_id;not null"`
	Requester     *user.User               `gorm:"foreignKey:RequesterID"`
	ApproverID    *int64                   `gorm:"column:approver_id"`
	Approver      *user.User               `gorm:"foreignKey:ApproverID"`
	People        []personnel.PersonalInfo `gorm:"many2many:permit_people;"`
	Stations      []station.Station        `gorm:"many2many:permit_stations;"`
	CreatedAt     time.Time                `gorm:"column:created_at;default:now()"`
	UpdatedAt     time.Time                `gorm:"column:updated_at;default:now()"`
}

func (Permit) TableName() string {
	return "permits"
}
