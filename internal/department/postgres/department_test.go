package postgres

import (
	"testing"
	"time"

	userDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/user"
	"github.com/frahmantamala/permit-management/internal/department"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestDepartmentRepository(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "DepartmentRepository Suite")
}

// sqlite-safe shadow of the users table.
type sqliteUser struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"column:name;not null"`
	Email        string `gorm:"column:email;uniqueIndex;not null"`
	PasswordHash string `gorm:"column:password_hash;not null"`
	EmployeeID   string `gorm:"column:employee_id;uniqueIndex;not null"`
	Role         string `gorm:"column:role;not null"`
	DepartmentID *int64 `gorm:"column:department_id"`
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (sqliteUser) TableName() string { return "users" }

var _ = Describe("DepartmentRepository", func() {
	var (
		db   *gorm.DB
		repo department.Repository
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&userDatamodel.Department{}, &sqliteUser{})
		Expect(err).NotTo(HaveOccurred())

		repo = NewDepartmentRepository(db)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("Create", func() {
		It("should persist a department", func() {
			d := &userDatamodel.Department{Name: "Operations"}
			Expect(repo.Create(d)).To(Succeed())
			Expect(d.ID).To(BeNumerically(">", 0))
		})

		It("should reject a duplicate name", func() {
			Expect(repo.Create(&userDatamodel.Department{Name: "Operations"})).To(Succeed())

			err := repo.Create(&userDatamodel.Department{Name: "Operations"})

			Expect(err).To(MatchError(gorm.ErrDuplicatedKey))
		})
	})

	Describe("GetByID", func() {
		It("should preload the department members", func() {
			d := &userDatamodel.Department{Name: "Operations"}
			Expect(repo.Create(d)).To(Succeed())

			member := sqliteUser{
				Name:         "Ana",
				Email:        "ana@company.com",
				PasswordHash: "x",
				EmployeeID:   "EMPAAAAAAA",
				Role:         "admin",
				DepartmentID: &d.ID,
			}
			Expect(db.Create(&member).Error).To(Succeed())

			loaded, err := repo.GetByID(d.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Users).To(HaveLen(1))
			Expect(loaded.Users[0].Email).To(Equal("ana@company.com"))
		})

		It("should return ErrRecordNotFound for an unknown id", func() {
			_, err := repo.GetByID(99999)
			Expect(err).To(MatchError(gorm.ErrRecordNotFound))
		})
	})

	Describe("UpdateName", func() {
		It("should rename a department", func() {
			d := &userDatamodel.Department{Name: "Operations"}
			Expect(repo.Create(d)).To(Succeed())

			Expect(repo.UpdateName(d.ID, "Field Operations")).To(Succeed())

			loaded, err := repo.GetByID(d.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded.Name).To(Equal("Field Operations"))
		})

		It("should return ErrRecordNotFound for an unknown id", func() {
			Expect(repo.UpdateName(99999, "Ghost")).To(MatchError(gorm.ErrRecordNotFound))
		})
	})

	Describe("Delete", func() {
		It("should remove a department", func() {
			d := &userDatamodel.Department{Name: "Operations"}
			Expect(repo.Create(d)).To(Succeed())

			Expect(repo.Delete(d.ID)).To(Succeed())

			departments, err := repo.List()
			Expect(err).NotTo(HaveOccurred())
			Expect(departments).To(BeEmpty())
		})

		It("should return ErrRecordNotFound for an unknown id", func() {
			Expect(repo.Delete(99999)).To(MatchError(gorm.ErrRecordNotFound))
		})
	})
})
