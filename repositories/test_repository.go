package repositories

import (
	"database/sql"
	"errors"

	"github.com/rewiselabs/rewise_neet_backend/models"
)

const mockTestColumns = "id, marks_scored, test_status, questions, time_taken, user_id, created_at, updated_at"
const testSettingsColumns = "id, key, value, is_active, created_at, updated_at"

type MockTestRepository struct {
	db *sql.DB
}

func NewMockTestRepository(db *sql.DB) *MockTestRepository {
	return &MockTestRepository{db: db}
}

func scanMockTest(row *sql.Row) (*models.MockTest, error) {
	var t models.MockTest
	var questions []byte
	err := row.Scan(&t.ID, &t.MarksScored, &t.TestStatus, &questions,
		&t.TimeTaken, &t.UserID, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	t.Questions = questions
	return &t, nil
}

func (r *MockTestRepository) scanMockTests(rows *sql.Rows) ([]models.MockTest, error) {
	tests := []models.MockTest{}
	for rows.Next() {
		var t models.MockTest
		var questions []byte
		if err := rows.Scan(&t.ID, &t.MarksScored, &t.TestStatus, &questions,
			&t.TimeTaken, &t.UserID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Questions = questions
		tests = append(tests, t)
	}
	return tests, rows.Err()
}

func (r *MockTestRepository) List() ([]models.MockTest, error) {
	rows, err := r.db.Query("SELECT " + mockTestColumns + " FROM mock_tests ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMockTests(rows)
}

func (r *MockTestRepository) ListByUser(userID int) ([]models.MockTest, error) {
	rows, err := r.db.Query("SELECT "+mockTestColumns+" FROM mock_tests WHERE user_id = $1 ORDER BY id", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMockTests(rows)
}

func (r *MockTestRepository) Get(id int) (*models.MockTest, error) {
	row := r.db.QueryRow("SELECT "+mockTestColumns+" FROM mock_tests WHERE id = $1", id)
	return scanMockTest(row)
}

func (r *MockTestRepository) Create(t *models.MockTest) error {
	query := `INSERT INTO mock_tests (marks_scored, test_status, questions, time_taken, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`
	var questions interface{}
	if t.Questions != nil {
		questions = []byte(t.Questions)
	}
	return r.db.QueryRow(query, t.MarksScored, t.TestStatus, questions, t.TimeTaken, t.UserID).
		Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *MockTestRepository) Update(id int, fields map[string]interface{}) (*models.MockTest, error) {
	if len(fields) > 0 {
		query, args := buildUpdate("mock_tests", fields, id, "updated_at = now()")
		if _, err := r.db.Exec(query, args...); err != nil {
			return nil, err
		}
	}
	return r.Get(id)
}

func (r *MockTestRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM mock_tests WHERE id = $1", id)
	return err
}

type TestSettingsRepository struct {
	db *sql.DB
}

func NewTestSettingsRepository(db *sql.DB) *TestSettingsRepository {
	return &TestSettingsRepository{db: db}
}

func scanTestSettings(row *sql.Row) (*models.TestSettings, error) {
	var s models.TestSettings
	err := row.Scan(&s.ID, &s.Key, &s.Value, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *TestSettingsRepository) List() ([]models.TestSettings, error) {
	rows, err := r.db.Query("SELECT " + testSettingsColumns + " FROM test_settings ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := []models.TestSettings{}
	for rows.Next() {
		var s models.TestSettings
		if err := rows.Scan(&s.ID, &s.Key, &s.Value, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

func (r *TestSettingsRepository) Get(id int) (*models.TestSettings, error) {
	row := r.db.QueryRow("SELECT "+testSettingsColumns+" FROM test_settings WHERE id = $1", id)
	return scanTestSettings(row)
}

// GetByKey returns the lowest-id row for the key; keys are not unique at the
// store level.
func (r *TestSettingsRepository) GetByKey(key string) (*models.TestSettings, error) {
	row := r.db.QueryRow("SELECT "+testSettingsColumns+" FROM test_settings WHERE key = $1 ORDER BY id LIMIT 1", key)
	return scanTestSettings(row)
}

func (r *TestSettingsRepository) Create(s *models.TestSettings) error {
	query := `INSERT INTO test_settings (key, value, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`
	return r.db.QueryRow(query, s.Key, s.Value, s.IsActive).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *TestSettingsRepository) Update(id int, fields map[string]interface{}) (*models.TestSettings, error) {
	if len(fields) > 0 {
		query, args := buildUpdate("test_settings", fields, id, "updated_at = now()")
		if _, err := r.db.Exec(query, args...); err != nil {
			return nil, err
		}
	}
	return r.Get(id)
}

func (r *TestSettingsRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM test_settings WHERE id = $1", id)
	return err
}
