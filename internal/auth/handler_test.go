package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/frahmantamala/permit-management/internal/auth"
	authPostgres "github.com/frahmantamala/permit-management/internal/auth/postgres"
	userDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/user"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlite-safe shadow of the users table; the real model declares postgres
// defaults that sqlite cannot evaluate.
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

var _ = Describe("Auth Handler Integration", func() {
	var (
		db      *gorm.DB
		service *auth.Service
		handler *auth.Handler
	)

	BeforeEach(func() {
		var err error
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Silent),
			TranslateError: true,
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&sqliteUser{})
		Expect(err).NotTo(HaveOccurred())

		repo := authPostgres.NewRepository(db)
		tokenGen := auth.NewJWTTokenGenerator("integration-test-secret-long-enough!!", 24*time.Hour)
		service = auth.NewService(repo, tokenGen, bcrypt.MinCost)
		handler = auth.NewHandler(service)
	})

	registerBody := func(name, email, password, role string) *bytes.Buffer {
		payload, _ := json.Marshal(map[string]string{
			"name":     name,
			"user":     email,
			"password": password,
			"role":     role,
		})
		return bytes.NewBuffer(payload)
	}

	Describe("POST /create-user", func() {
		It("should create the user and never echo the password", func() {
			req := httptest.NewRequest(http.MethodPost, "/create-user",
				registerBody("Ana", "ana@company.com", "s3cret-pass", "admin"))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Header().Get("Content-Type")).To(ContainSubstring("application/json"))

			var body map[string]any
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body).To(HaveKeyWithValue("email", "ana@company.com"))
			Expect(body).To(HaveKey("employee_id"))
			Expect(body).NotTo(HaveKey("password"))
			Expect(body).NotTo(HaveKey("password_hash"))
		})

		It("should reject a duplicate email with 409", func() {
			req := httptest.NewRequest(http.MethodPost, "/create-user",
				registerBody("Ana", "ana@company.com", "s3cret-pass", "admin"))
			handler.Register(httptest.NewRecorder(), req)

			req = httptest.NewRequest(http.MethodPost, "/create-user",
				registerBody("Another Ana", "ana@company.com", "other-pass", "user"))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))

			var body map[string]string
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body).To(HaveKey("msg"))
		})

		It("should reject a payload with missing fields with 400", func() {
			payload, _ := json.Marshal(map[string]string{"name": "Incomplete"})
			req := httptest.NewRequest(http.MethodPost, "/create-user", bytes.NewBuffer(payload))
			w := httptest.NewRecorder()

			handler.Register(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /login", func() {
		BeforeEach(func() {
			req := httptest.NewRequest(http.MethodPost, "/create-user",
				registerBody("Ana", "ana@company.com", "s3cret-pass", "admin"))
			w := httptest.NewRecorder()
			handler.Register(w, req)
			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		loginBody := func(user, password string) *bytes.Buffer {
			payload, _ := json.Marshal(map[string]string{"user": user, "password": password})
			return bytes.NewBuffer(payload)
		}

		It("should return a token carrying the stored role", func() {
			req := httptest.NewRequest(http.MethodPost, "/login",
				loginBody("ana@company.com", "s3cret-pass"))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var body auth.LoginResult
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body.AccessToken).NotTo(BeEmpty())

			claims, err := service.ValidateAccessToken(body.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.Role).To(Equal("admin"))
		})

		It("should record last_login on success", func() {
			req := httptest.NewRequest(http.MethodPost, "/login",
				loginBody("ana@company.com", "s3cret-pass"))
			w := httptest.NewRecorder()

			handler.Login(w, req)
			Expect(w.Code).To(Equal(http.StatusOK))

			var stored userDatamodel.User
			Expect(db.Where("email = ?", "ana@company.com").First(&stored).Error).To(Succeed())
			Expect(stored.LastLogin).NotTo(BeNil())
		})

		It("should return 401 for a wrong password", func() {
			req := httptest.NewRequest(http.MethodPost, "/login",
				loginBody("ana@company.com", "wrong-pass"))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))

			var body map[string]string
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body["msg"]).To(Equal("incorrect password"))
		})

		It("should return 404 for an unknown user", func() {
			req := httptest.NewRequest(http.MethodPost, "/login",
				loginBody("ghost@company.com", "whatever"))
			w := httptest.NewRecorder()

			handler.Login(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))

			var body map[string]string
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body["msg"]).To(Equal("user not found"))
		})
	})

	Describe("AuthMiddleware", func() {
		It("should populate the request context from a valid bearer token", func() {
			req := httptest.NewRequest(http.MethodPost, "/create-user",
				registerBody("Ana", "ana@company.com", "s3cret-pass", "admin"))
			w := httptest.NewRecorder()
			handler.Register(w, req)

			result, err := service.Authenticate(auth.LoginDTO{User: "ana@company.com", Password: "s3cret-pass"})
			Expect(err).NotTo(HaveOccurred())

			var seen *auth.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = auth.UserFromContext(r.Context())
			})

			protected := handler.AuthMiddleware(next)
			req = httptest.NewRequest(http.MethodGet, "/users/me", nil)
			req.Header.Set("Authorization", "Bearer "+result.AccessToken)
			protected.ServeHTTP(httptest.NewRecorder(), req)

			Expect(seen).NotTo(BeNil())
			Expect(seen.Email).To(Equal("ana@company.com"))
			Expect(seen.IsAdmin()).To(BeTrue())
		})

		It("should reject a request without a token", func() {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Fail("handler should not be reached")
			})

			protected := handler.AuthMiddleware(next)
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			w := httptest.NewRecorder()
			protected.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should reject a garbage token", func() {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Fail("handler should not be reached")
			})

			protected := handler.AuthMiddleware(next)
			req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
			req.Header.Set("Authorization", "Bearer not.a.token")
			w := httptest.NewRecorder()
			protected.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})

	Describe("RequireRole", func() {
		var (
			adminToken string
			userToken  string
		)

		BeforeEach(func() {
			for _, u := range []struct{ name, email, role string }{
				{"Ana Admin", "ana@company.com", "admin"},
				{"Victor Viewer", "victor@company.com", "user"},
			} {
				req := httptest.NewRequest(http.MethodPost, "/create-user",
					registerBody(u.name, u.email, "s3cret-pass", u.role))
				w := httptest.NewRecorder()
				handler.Register(w, req)
				Expect(w.Code).To(Equal(http.StatusCreated))
			}

			result, err := service.Authenticate(auth.LoginDTO{User: "ana@company.com", Password: "s3cret-pass"})
			Expect(err).NotTo(HaveOccurred())
			adminToken = result.AccessToken

			result, err = service.Authenticate(auth.LoginDTO{User: "victor@company.com", Password: "s3cret-pass"})
			Expect(err).NotTo(HaveOccurred())
			userToken = result.AccessToken
		})

		guardedRequest := func(token string, next http.Handler) *httptest.ResponseRecorder {
			guarded := handler.AuthMiddleware(handler.RequireRole("admin")(next))
			req := httptest.NewRequest(http.MethodDelete, "/stations/1", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			w := httptest.NewRecorder()
			guarded.ServeHTTP(w, req)
			return w
		}

		It("should let an admin through to the handler", func() {
			reached := false
			w := guardedRequest(adminToken, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				reached = true
				w.WriteHeader(http.StatusNoContent)
			}))

			Expect(reached).To(BeTrue())
			Expect(w.Code).To(Equal(http.StatusNoContent))
		})

		It("should return 403 for an authenticated non-admin", func() {
			w := guardedRequest(userToken, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Fail("handler should not be reached")
			}))

			Expect(w.Code).To(Equal(http.StatusForbidden))

			var body map[string]string
			Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
			Expect(body["msg"]).To(Equal("insufficient role"))
		})
	})
})
