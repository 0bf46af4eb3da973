package services

import (
	"database/sql"
	"encoding/json"
	"strconv"

	"github.com/rewiselabs/rewise_neet_backend/models"
	"github.com/rewiselabs/rewise_neet_backend/repositories"
)

const defaultQuestionsPerTest = 20

// TestService covers test settings, mock tests and mock-test preparation.
type TestService struct {
	settings  *repositories.TestSettingsRepository
	mockTests *repositories.MockTestRepository
	questions *repositories.QuestionRepository
	users     *repositories.UserRepository
}

func NewTestService(db *sql.DB) *TestService {
	return &TestService{
		settings:  repositories.NewTestSettingsRepository(db),
		mockTests: repositories.NewMockTestRepository(db),
		questions: repositories.NewQuestionRepository(db),
		users:     repositories.NewUserRepository(db),
	}
}

// --- Test settings ---

func (s *TestService) ListSettings() ([]models.TestSettings, error) {
	return s.settings.List()
}

func (s *TestService) GetSettings(id int) (*models.TestSettings, error) {
	settings, err := s.settings.Get(id)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, ErrSettingsNotFound
	}
	return settings, nil
}

func (s *TestService) GetSettingsByKey(key string) (*models.TestSettings, error) {
	settings, err := s.settings.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, ErrSettingsNotFound
	}
	return settings, nil
}

func (s *TestService) CreateSettings(payload models.TestSettingsCreate) (*models.TestSettings, error) {
	settings := models.TestSettings{
		Key:      payload.Key,
		Value:    payload.Value,
		IsActive: payload.IsActive == nil || *payload.IsActive,
	}
	if err := s.settings.Create(&settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *TestService) UpdateSettings(id int, payload models.TestSettingsUpdate) (*models.TestSettings, error) {
	if _, err := s.GetSettings(id); err != nil {
		return nil, err
	}
	return s.settings.Update(id, testSettingsUpdateFields(payload))
}

func (s *TestService) DeleteSettings(id int) error {
	if _, err := s.GetSettings(id); err != nil {
		return err
	}
	return s.settings.Delete(id)
}

// --- Mock tests ---

func (s *TestService) ListMockTests() ([]models.MockTest, error) {
	return s.mockTests.List()
}

func (s *TestService) ListMockTestsByUser(userID int) ([]models.MockTest, error) {
	user, err := s.users.Get(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.mockTests.ListByUser(userID)
}

func (s *TestService) GetMockTest(id int) (*models.MockTest, error) {
	test, err := s.mockTests.Get(id)
	if err != nil {
		return nil, err
	}
	if test == nil {
		return nil, ErrMockTestNotFound
	}
	return test, nil
}

func (s *TestService) CreateMockTest(payload models.MockTestCreate) (*models.MockTest, error) {
	user, err := s.users.Get(payload.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	test := models.MockTest{
		MarksScored: payload.MarksScored,
		TestStatus:  payload.TestStatus,
		Questions:   payload.Questions,
		TimeTaken:   payload.TimeTaken,
		UserID:      payload.UserID,
	}
	if err := s.mockTests.Create(&test); err != nil {
		return nil, err
	}
	return &test, nil
}

func (s *TestService) UpdateMockTest(id int, payload models.MockTestUpdate) (*models.MockTest, error) {
	if _, err := s.GetMockTest(id); err != nil {
		return nil, err
	}
	return s.mockTests.Update(id, mockTestUpdateFields(payload))
}

func (s *TestService) DeleteMockTest(id int) error {
	if _, err := s.GetMockTest(id); err != nil {
		return err
	}
	return s.mockTests.Delete(id)
}

// --- Test preparation ---

// GetQuestionsBySubject returns the published question pool for a subject.
func (s *TestService) GetQuestionsBySubject(subject string) ([]models.Question, error) {
	return s.questions.Search(repositories.SearchFilters{Subject: &subject})
}

// PrepareTest builds a fresh mock test for a user from the subject's
// published questions. The pool size caps at the questions_per_test setting
// when that is present and numeric.
func (s *TestService) PrepareTest(payload models.PrepareTestRequest) (*models.MockTest, error) {
	user, err := s.users.Get(payload.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	questions, err := s.GetQuestionsBySubject(payload.Subject)
	if err != nil {
		return nil, err
	}

	limit := defaultQuestionsPerTest
	if setting, err := s.settings.GetByKey("questions_per_test"); err != nil {
		return nil, err
	} else if setting != nil && setting.IsActive {
		if n, err := strconv.Atoi(setting.Value); err == nil && n > 0 {
			limit = n
		}
	}
	if len(questions) > limit {
		questions = questions[:limit]
	}

	blob, err := json.Marshal(questions)
	if err != nil {
		return nil, err
	}
	test := models.MockTest{
		TestStatus: "not_started",
		Questions:  blob,
		UserID:     payload.UserID,
	}
	if err := s.mockTests.Create(&test); err != nil {
		return nil, err
	}
	return &test, nil
}
