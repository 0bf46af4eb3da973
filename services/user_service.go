package services

import (
	"database/sql"

	"github.com/rewiselabs/rewise_neet_backend/models"
	"github.com/rewiselabs/rewise_neet_backend/repositories"
	"github.com/rewiselabs/rewise_neet_backend/util"
)

type UserService struct {
	repo *repositories.UserRepository
}

func NewUserService(db *sql.DB) *UserService {
	return &UserService{repo: repositories.NewUserRepository(db)}
}

func (s *UserService) ListUsers() ([]models.User, error) {
	return s.repo.List()
}

func (s *UserService) GetUser(id int) (*models.User, error) {
	user, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// CreateUser hashes the password and inserts the user. The email pre-check
// only buys a friendlier message; the unique constraint on users.email is the
// authoritative guard, so the constraint error is mapped to the same
// duplicate error.
func (s *UserService) CreateUser(payload models.UserCreate) (*models.User, error) {
	existing, err := s.repo.GetByEmail(payload.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	passwordHash, err := util.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		Name:         payload.Name,
		Email:        payload.Email,
		Mobile:       payload.Mobile,
		PasswordHash: passwordHash,
		Role:         payload.Role,
		IsActive:     payload.IsActive == nil || *payload.IsActive,
	}
	if user.Role == "" {
		user.Role = "user"
	}
	if err := s.repo.Create(&user); err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateUser(id int, payload models.UserUpdate) (*models.User, error) {
	if _, err := s.GetUser(id); err != nil {
		return nil, err
	}

	fields := userUpdateFields(payload)
	if payload.Password.Set && !payload.Password.Null {
		passwordHash, err := util.HashPassword(payload.Password.Value)
		if err != nil {
			return nil, err
		}
		fields["password_hash"] = passwordHash
	}

	user, err := s.repo.Update(id, fields)
	if err != nil {
		if repositories.IsUniqueViolation(err) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) DeleteUser(id int) error {
	if _, err := s.GetUser(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// VerifyPassword checks a candidate password for a user. There is no login
// flow wired up; this exists for callers that need credential verification.
func (s *UserService) VerifyPassword(id int, password string) (bool, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return false, err
	}
	return util.VerifyPassword(password, user.PasswordHash), nil
}
