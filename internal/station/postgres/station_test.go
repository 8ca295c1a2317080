package postgres

import (
	"testing"
	"time"

	stationDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/station"
	"github.com/frahmantamala/permit-management/internal/station"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestStationRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "StationRepository Suite")
}

// sqlite-safe shadow of the stations table; the real model declares postgres
// time defaults that sqlite cannot evaluate.
type sqliteStation struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"column:name;uniqueIndex;not null"`
	Coordinates string `gorm:"column:coordinates;not null"`
	Address     string `gorm:"column:address;not null"`
	RegionID    *int64 `gorm:"column:region_id"`
	MarketID    *int64 `gorm:"column:market_id"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (sqliteStation) TableName() string { return "stations" }

var _ = Describe("StationRepository", func() {
	var (
		db   *gorm.DB
		repo station.Repository

		market stationDatamodel.Market
		region stationDatamodel.Region
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&stationDatamodel.Market{}, &stationDatamodel.Region{},
			&sqliteStation{}, &stationDatamodel.ContactStation{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewStationRepository(db)

		market = stationDatamodel.Market{Name: "North"}
		Expect(repo.CreateMarket(&market)).To(Succeed())

		region = stationDatamodel.Region{Region: "Coastal", MarketID: &market.ID}
		Expect(repo.CreateRegion(&region)).To(Succeed())
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	newStation := func(name string) *stationDatamodel.Station {
		return &stationDatamodel.Station{
			Name:        name,
			Coordinates: "4.175, 73.509",
			Address:     "1 Harbour Road",
			RegionID:    &region.ID,
			MarketID:    &market.ID,
		}
	}

	Describe("CreateStation", func() {
		It("should persist a station", func() {
			s := newStation("ST-Coastal-01")
			Expect(repo.CreateStation(s)).To(Succeed())
			Expect(s.ID).To(BeNumerically(">", 0))
		})

		It("should reject a duplicate station name", func() {
			Expect(repo.CreateStation(newStation("ST-Coastal-01"))).To(Succeed())

			err := repo.CreateStation(newStation("ST-Coastal-01"))

			Expect(err).To(MatchError(gorm.ErrDuplicatedKey))
		})
	})

	Describe("GetStationByID", func() {
		It("should preload region, market and contacts", func() {
			s := newStation("ST-Coastal-01")
			Expect(repo.CreateStation(s)).To(Succeed())
			Expect(repo.CreateContact(&stationDatamodel.ContactStation{
				Name:      "Site Manager",
				Email:     "manager@station.example",
				Phone:     "+960 777 1111",
				StationID: s.ID,
			})).To(Succeed())

			loaded, err := repo.GetStationByID(s.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Region).NotTo(BeNil())
			Expect(loaded.Region.Region).To(Equal("Coastal"))
			Expect(loaded.Market).NotTo(BeNil())
			Expect(loaded.Market.Name).To(Equal("North"))
			Expect(loaded.Contacts).To(HaveLen(1))
			Expect(loaded.Contacts[0].Email).To(Equal("manager@station.example"))
		})

		It("should return ErrRecordNotFound for an unknown id", func() {
			_, err := repo.GetStationByID(99999)
			Expect(err).To(MatchError(gorm.ErrRecordNotFound))
		})
	})

	Describe("ListStations", func() {
		BeforeEach(func() {
			Expect(repo.CreateStation(newStation("ST-Coastal-01"))).To(Succeed())
			Expect(repo.CreateStation(newStation("ST-Metro-01"))).To(Succeed())
		})

		It("should return all stations without a filter", func() {
			stations, err := repo.ListStations("")
			Expect(err).NotTo(HaveOccurred())
			Expect(stations).To(HaveLen(2))
		})

		It("should filter by a name fragment", func() {
			stations, err := repo.ListStations("Metro")
			Expect(err).NotTo(HaveOccurred())
			Expect(stations).To(HaveLen(1))
			Expect(stations[0].Name).To(Equal("ST-Metro-01"))
		})
	})

	Describe("UpdateStation", func() {
		It("should apply partial field updates", func() {
			s := newStation("ST-Coastal-01")
			Expect(repo.CreateStation(s)).To(Succeed())

			Expect(repo.UpdateStation(s.ID, map[string]interface{}{
				"address": "99 New Quay",
			})).To(Succeed())

			loaded, err := repo.GetStationByID(s.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Address).To(Equal("99 New Quay"))
			Expect(loaded.Name).To(Equal("ST-Coastal-01"))
		})

		It("should return ErrRecordNotFound for an unknown id", func() {
			err := repo.UpdateStation(99999, map[string]interface{}{"address": "nowhere"})
			Expect(err).To(MatchError(gorm.ErrRecordNotFound))
		})
	})

	Describe("DeleteContact", func() {
		It("should remove a contact", func() {
			s := newStation("ST-Coastal-01")
			Expect(repo.CreateStation(s)).To(Succeed())

			contact := &stationDatamodel.ContactStation{
				Name:      "Site Manager",
				Email:     "manager@station.example",
				StationID: s.ID,
			}
			Expect(repo.CreateContact(contact)).To(Succeed())

			Expect(repo.DeleteContact(contact.ID)).To(Succeed())

			loaded, err := repo.GetStationByID(s.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Contacts).To(BeEmpty())
		})

		It("should return ErrRecordNotFound for an unknown contact", func() {
			Expect(repo.DeleteContact(99999)).To(MatchError(gorm.ErrRecordNotFound))
		})
	})

	Describe("Markets and regions", func() {
		It("should reject a duplicate market name", func() {
			err := repo.CreateMarket(&stationDatamodel.Market{Name: "North"})
			Expect(err).To(MatchError(gorm.ErrDuplicatedKey))
		})

		It("should list regions in insertion order", func() {
			Expect(repo.CreateRegion(&stationDatamodel.Region{Region: "Highlands", MarketID: &market.ID})).To(Succeed())

			regions, err := repo.ListRegions()

			Expect(err).NotTo(HaveOccurred())
			Expect(regions).To(HaveLen(2))
			Expect(regions[0].Region).To(Equal("Coastal"))
			Expect(regions[1].Region).To(Equal("Highlands"))
		})
	})
})
