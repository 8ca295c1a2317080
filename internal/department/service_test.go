package department

import (
	"testing"

	"github.com/frahmantamala/permit-management/internal"
	userDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/user"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestDepartment(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Department Module Suite")
}

// Mock Repository for testing
type mockDepartmentRepository struct {
	departments map[int64]*userDatamodel.Department
	byName      map[string]int64
	nextID      int64
}

func newMockDepartmentRepository() *mockDepartmentRepository {
	return &mockDepartmentRepository{
		departments: map[int64]*userDatamodel.Department{},
		byName:      map[string]int64{},
		nextID:      1,
	}
}

func (m *mockDepartmentRepository) Create(d *userDatamodel.Department) error {
	if _, taken := m.byName[d.Name]; taken {
		return gorm.ErrDuplicatedKey
	}
	d.ID = m.nextID
	m.nextID++
	m.departments[d.ID] = d
	m.byName[d.Name] = d.ID
	return nil
}

func (m *mockDepartmentRepository) GetByID(id int64) (*userDatamodel.Department, error) {
	if d, ok := m.departments[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDepartmentRepository) List() ([]*userDatamodel.Department, error) {
	out := make([]*userDatamodel.Department, 0, len(m.departments))
	for id := int64(1); id < m.nextID; id++ {
		if d, ok := m.departments[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDepartmentRepository) UpdateName(id int64, name string) error {
	d, ok := m.departments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if existing, taken := m.byName[name]; taken && existing != id {
		return gorm.ErrDuplicatedKey
	}
	delete(m.byName, d.Name)
	d.Name = name
	m.byName[name] = id
	return nil
}

func (m *mockDepartmentRepository) Delete(id int64) error {
	d, ok := m.departments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.byName, d.Name)
	delete(m.departments, id)
	return nil
}

var _ = ginkgo.Describe("DepartmentService", func() {
	var (
		service  *Service
		mockRepo *mockDepartmentRepository
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockDepartmentRepository()
		service = NewService(mockRepo)
	})

	ginkgo.Describe("Create", func() {
		ginkgo.It("should create a department", func() {
			d, err := service.Create(&CreateDepartmentDTO{Name: "Operations"})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(d.ID).To(gomega.BeNumerically(">", 0))
			gomega.Expect(d.Name).To(gomega.Equal("Operations"))
		})

		ginkgo.It("should map a duplicate name to a conflict", func() {
			_, err := service.Create(&CreateDepartmentDTO{Name: "Operations"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			d, err := service.Create(&CreateDepartmentDTO{Name: "Operations"})

			gomega.Expect(d).To(gomega.BeNil())
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeConflict))
		})

		ginkgo.It("should reject an empty name", func() {
			d, err := service.Create(&CreateDepartmentDTO{})

			gomega.Expect(d).To(gomega.BeNil())
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeValidation))
		})
	})

	ginkgo.Describe("GetByID", func() {
		ginkgo.It("should include member refs without nesting", func() {
			created, err := service.Create(&CreateDepartmentDTO{Name: "Operations"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			mockRepo.departments[created.ID].Users = []userDatamodel.User{
				{ID: 5, Name: "Ana", Email: "ana@company.com", PasswordHash: "never-shown"},
			}

			d, err := service.GetByID(created.ID)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(d.Users).To(gomega.HaveLen(1))
			gomega.Expect(d.Users[0]).To(gomega.Equal(UserRef{ID: 5, Name: "Ana", Email: "ana@company.com"}))
		})

		ginkgo.It("should return not found for an unknown id", func() {
			d, err := service.GetByID(99999)

			gomega.Expect(d).To(gomega.BeNil())
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeDepartmentNotFound))
		})
	})

	ginkgo.Describe("Update", func() {
		ginkgo.It("should rename a department", func() {
			created, err := service.Create(&CreateDepartmentDTO{Name: "Operations"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			renamed, err := service.Update(created.ID, &UpdateDepartmentDTO{Name: "Field Operations"})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(renamed.Name).To(gomega.Equal("Field Operations"))
		})

		ginkgo.It("should map a name collision to a conflict", func() {
			_, err := service.Create(&CreateDepartmentDTO{Name: "Operations"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			second, err := service.Create(&CreateDepartmentDTO{Name: "Engineering"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			renamed, err := service.Update(second.ID, &UpdateDepartmentDTO{Name: "Operations"})

			gomega.Expect(renamed).To(gomega.BeNil())
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeConflict))
		})
	})

	ginkgo.Describe("Delete", func() {
		ginkgo.It("should delete an existing department", func() {
			created, err := service.Create(&CreateDepartmentDTO{Name: "Operations"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			gomega.Expect(service.Delete(created.ID)).To(gomega.Succeed())

			departments, err := service.List()
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(departments).To(gomega.BeEmpty())
		})

		ginkgo.It("should return not found for an unknown id", func() {
			err := service.Delete(99999)

			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodeDepartmentNotFound))
		})
	})
})
