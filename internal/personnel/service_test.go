package personnel

import (
	"testing"

	"github.com/frahmantamala/permit-management/internal"
	personnelDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/personnel"
	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"gorm.io/gorm"
)

func TestPersonnel(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Personnel Module Suite")
}

// Mock Repository for testing
type mockPersonnelRepository struct {
	people       map[int64]*personnelDatamodel.PersonalInfo
	byNationalID map[string]int64
	contractors  map[int64]*personnelDatamodel.Contractor
	nextID       int64
}

func newMockPersonnelRepository() *mockPersonnelRepository {
	return &mockPersonnelRepository{
		people:       map[int64]*personnelDatamodel.PersonalInfo{},
		byNationalID: map[string]int64{},
		contractors: map[int64]*personnelDatamodel.Contractor{
			1: {ID: 1, CompanyName: "TowerWorks Ltd", ContactEmail: "ops@towerworks.example"},
		},
		nextID: 1,
	}
}

func (m *mockPersonnelRepository) CreatePerson(p *personnelDatamodel.PersonalInfo) error {
	if _, taken := m.byNationalID[p.NationalID]; taken {
		return gorm.ErrDuplicatedKey
	}
	p.ID = m.nextID
	m.nextID++
	if p.ContractorID != nil {
		p.Contractor = m.contractors[*p.ContractorID]
	}
	m.people[p.ID] = p
	m.byNationalID[p.NationalID] = p.ID
	return nil
}

func (m *mockPersonnelRepository) GetPersonByID(id int64) (*personnelDatamodel.PersonalInfo, error) {
	if p, ok := m.people[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonnelRepository) ListPeople(limit, offset int) ([]*personnelDatamodel.PersonalInfo, error) {
	var out []*personnelDatamodel.PersonalInfo
	for id := int64(1); id < m.nextID; id++ {
		if p, ok := m.people[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPersonnelRepository) UpdatePerson(id int64, fields map[string]interface{}) error {
	p, ok := m.people[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if v, ok := fields["full_name"]; ok {
		p.FullName = v.(string)
	}
	if v, ok := fields["is_allowed"]; ok {
		p.IsAllowed = v.(bool)
	}
	if v, ok := fields["contractor_id"]; ok {
		if v == nil {
			p.ContractorID = nil
			p.Contractor = nil
		} else {
			cid := v.(int64)
			p.ContractorID = &cid
			p.Contractor = m.contractors[cid]
		}
	}
	return nil
}

func (m *mockPersonnelRepository) DeletePerson(id int64) error {
	p, ok := m.people[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.byNationalID, p.NationalID)
	delete(m.people, id)
	return nil
}

func (m *mockPersonnelRepository) CreateContractor(c *personnelDatamodel.Contractor) error {
	for _, have := range m.contractors {
		if have.ContactEmail == c.ContactEmail {
			return gorm.ErrDuplicatedKey
		}
	}
	c.ID = int64(len(m.contractors) + 1)
	m.contractors[c.ID] = c
	return nil
}

func (m *mockPersonnelRepository) GetContractorByID(id int64) (*personnelDatamodel.Contractor, error) {
	if c, ok := m.contractors[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPersonnelRepository) ListContractors() ([]*personnelDatamodel.Contractor, error) {
	var out []*personnelDatamodel.Contractor
	for _, c := range m.contractors {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockPersonnelRepository) DeleteContractor(id int64) error {
	if _, ok := m.contractors[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.contractors, id)
	return nil
}

var _ = ginkgo.Describe("PersonnelService", func() {
	var (
		service  *Service
		mockRepo *mockPersonnelRepository
	)

	contractorID := int64(1)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockPersonnelRepository()
		service = NewService(mockRepo)
	})

	ginkgo.Describe("CreatePerson", func() {
		ginkgo.It("should create a person with a contractor ref", func() {
			view, err := service.CreatePerson(&CreatePersonDTO{
				FullName:     "Worker One",
				NationalID:   "A100001",
				IsAllowed:    true,
				ContractorID: &contractorID,
			})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(view.IsAllowed).To(gomega.BeTrue())
			gomega.Expect(view.Contractor).ToNot(gomega.BeNil())
			gomega.Expect(view.Contractor.CompanyName).To(gomega.Equal("TowerWorks Ltd"))
		})

		ginkgo.It("should reject an unknown contractor", func() {
			unknown := int64(999)
			view, err := service.CreatePerson(&CreatePersonDTO{
				FullName:     "Worker One",
				NationalID:   "A100001",
				ContractorID: &unknown,
			})

			gomega.Expect(view).To(gomega.BeNil())
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeNotFound))
		})

		ginkgo.It("should map a duplicate national id to a conflict", func() {
			_, err := service.CreatePerson(&CreatePersonDTO{FullName: "Worker One", NationalID: "A100001"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			view, err := service.CreatePerson(&CreatePersonDTO{FullName: "Someone Else", NationalID: "A100001"})

			gomega.Expect(view).To(gomega.BeNil())
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeConflict))
		})

		ginkgo.It("should reject a missing national id", func() {
			view, err := service.CreatePerson(&CreatePersonDTO{FullName: "Worker One"})

			gomega.Expect(view).To(gomega.BeNil())
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeValidation))
		})
	})

	ginkgo.Describe("SetAllowed", func() {
		ginkgo.It("should toggle the eligibility flag", func() {
			created, err := service.CreatePerson(&CreatePersonDTO{
				FullName: "Worker One", NationalID: "A100001", IsAllowed: true,
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			view, err := service.SetAllowed(created.ID, false)

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(view.IsAllowed).To(gomega.BeFalse())
		})

		ginkgo.It("should return not found for an unknown person", func() {
			view, err := service.SetAllowed(99999, true)

			gomega.Expect(view).To(gomega.BeNil())
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Code).To(gomega.Equal(internal.ErrCodePersonNotFound))
		})
	})

	ginkgo.Describe("UpdatePerson", func() {
		ginkgo.It("should apply only the provided fields", func() {
			created, err := service.CreatePerson(&CreatePersonDTO{
				FullName: "Worker One", NationalID: "A100001", IsAllowed: true,
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			renamed := "Worker Renamed"
			view, err := service.UpdatePerson(created.ID, &UpdatePersonDTO{FullName: &renamed})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(view.FullName).To(gomega.Equal("Worker Renamed"))
			gomega.Expect(view.IsAllowed).To(gomega.BeTrue())
		})

		ginkgo.It("should reject an empty update", func() {
			created, err := service.CreatePerson(&CreatePersonDTO{
				FullName: "Worker One", NationalID: "A100001",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			view, err := service.UpdatePerson(created.ID, &UpdatePersonDTO{})

			gomega.Expect(view).To(gomega.BeNil())
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeValidation))
		})

		ginkgo.It("should clear the contractor link when asked", func() {
			contractorID := int64(1)
			created, err := service.CreatePerson(&CreatePersonDTO{
				FullName: "Worker One", NationalID: "A100001", ContractorID: &contractorID,
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(created.Contractor).ToNot(gomega.BeNil())

			view, err := service.UpdatePerson(created.ID, &UpdatePersonDTO{ClearContractor: true})

			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(view.Contractor).To(gomega.BeNil())
		})

		ginkgo.It("should reject clearing and assigning a contractor at once", func() {
			contractorID := int64(1)
			created, err := service.CreatePerson(&CreatePersonDTO{
				FullName: "Worker One", NationalID: "A100001",
			})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			view, err := service.UpdatePerson(created.ID, &UpdatePersonDTO{
				ContractorID: &contractorID, ClearContractor: true,
			})

			gomega.Expect(view).To(gomega.BeNil())
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeValidation))
		})
	})

	ginkgo.Describe("Contractors", func() {
		ginkgo.It("should map a duplicate contact email to a conflict", func() {
			view, err := service.CreateContractor(&CreateContractorDTO{
				CompanyName:  "Other Co",
				ContactEmail: "ops@towerworks.example",
			})

			gomega.Expect(view).To(gomega.BeNil())
			appErr, ok := internal.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Type).To(gomega.Equal(internal.ErrorTypeConflict))
		})
	})
})
