package station

import "time"

type Market struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"column:name;uniqueIndex;not null"`
}

func (Market) TableName() string {
	return "markets"
}

type Region struct {
	ID       int64   `gorm:"primaryKey"`
	Region   string  `gorm:"column:region;uniqueIndex;not null"`
	MarketID *int64  `gorm:"column:market_id"`
	Market   *Market `gorm:"foreignKey:MarketID"`
}

func (Region) TableName() string {
	return "regions"
}

type Station struct {
	ID          int64            `gorm:"primaryKey"`
	Name        string           `gorm:"column:name;uniqueIndex;not null"`
	Coordinates string           `gorm:"column:coordinates;not null"`
	Address     string           `gorm:"column:address;not null"`
	RegionID    *int64           `gorm:"column:region_id"`
	Region      *Region          `gorm:"foreignKey:RegionID"`
	MarketID    *int64           `gorm:"column:market_id"`
	Market      *Market          `gorm:"foreignKey:MarketID"`
	Contacts    []ContactStation `gorm:"foreignKey:StationID"`
	CreatedAt   time.Time        `gorm:"column:created_at;default:now()"`
	UpdatedAt   time.Time        `gorm:"column:updated_at;default:now()"`
}

func (Station) TableName() string {
	return "stations"
}

type ContactStation struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"column:name;not null"`
	Email     string `gorm:"column:email;uniqueIndex;not null"`
	Phone     string `gorm:"column:phone"`
	StationID int64  `gorm:"column:station_id;not null"`
}

func (ContactStation) TableName() string {
	return "contact_stations"
}
