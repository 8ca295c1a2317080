package auth

import (
	"errors"
	"strings"
	"time"

	userDatamodel "github.com/frahmantamala/permit-management/internal/core/datamodel/user"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository interface {
	GetByEmail(email string) (*userDatamodel.User, error)
	GetByID(userID int64) (*userDatamodel.User, error)
	EmailExists(email string) (bool, error)
	EmployeeIDExists(employeeID string) (bool, error)
	Create(u *userDatamodel.User) error
	UpdateLastLogin(userID int64, at time.Time) error
}

type ServiceAPI interface {
	Register(dto RegisterDTO) (*RegisteredUser, error)
	Authenticate(dto LoginDTO) (LoginResult, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetUser(userID int64) (*User, error)
}

type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
	bcryptCost     int
}

func NewService(userRepo UserRepository, tokenGen TokenGenerator, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
	}
}

// Register hashes the password and persists a new user. The email must be
// unused; the employee id is assigned here, never taken from the payload.
func (s *Service) Register(dto RegisterDTO) (*RegisteredUser, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	email := dto.EmailAddress()

	taken, err := s.userRepo.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	employeeID, err := s.generateEmployeeID()
	if err != nil {
		return nil, err
	}

	u := &userDatamodel.User{
		Name:         dto.Name,
		Email:        email,
		PasswordHash: string(hash),
		EmployeeID:   employeeID,
		Role:         dto.Role,
	}

	if err := s.userRepo.Create(u); err != nil {
		// unique index backstop for concurrent registrations
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &RegisteredUser{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		EmployeeID: u.EmployeeID,
		Role:       u.Role,
	}, nil
}

// Authenticate verifies credentials, issues a bearer token and records the login time.
func (s *Service) Authenticate(dto LoginDTO) (LoginResult, error) {
	if err := dto.Validate(); err != nil {
		return LoginResult{}, err
	}

	u, err := s.userRepo.GetByEmail(dto.User)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LoginResult{}, ErrUserNotFound
		}
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	accessToken, err := s.tokenGenerator.GenerateAccessToken(u.ID, u.Role)
	if err != nil {
		return LoginResult{}, err
	}

	if err := s.userRepo.UpdateLastLogin(u.ID, time.Now().UTC()); err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Msg:         "login successful",
		AccessToken: accessToken,
	}, nil
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// GetUser loads the principal referenced by a validated token.
func (s *Service) GetUser(userID int64) (*User, error) {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &User{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}, nil
}

// generateEmployeeID derives a short unique code. Collisions are unlikely but
// the unique column makes a retry cheap.
func (s *Service) generateEmployeeID() (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		code := "EMP" + strings.ToUpper(uuid.NewString()[:7])
		exists, err := s.userRepo.EmployeeIDExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("could not allocate employee id")
}
