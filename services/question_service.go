package services

import (
	"database/sql"

	"github.com/rewiselabs/rewise_neet_backend/models"
	"github.com/rewiselabs/rewise_neet_backend/repositories"
)

type QuestionService struct {
	repo *repositories.QuestionRepository
}

func NewQuestionService(db *sql.DB) *QuestionService {
	return &QuestionService{repo: repositories.NewQuestionRepository(db)}
}

func (s *QuestionService) ListQuestions() ([]models.Question, error) {
	return s.repo.List()
}

func (s *QuestionService) SearchQuestionsByYear(year string) ([]models.Question, error) {
	return s.repo.ListByYear(year)
}

func (s *QuestionService) SearchQuestions(filters repositories.SearchFilters) ([]models.Question, error) {
	return s.repo.Search(filters)
}

func (s *QuestionService) GetQuestionByQuestionNumber(year, questionNumber string) (*models.Question, error) {
	question, err := s.repo.GetByQuestionNumber(year, questionNumber)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	return question, nil
}

func (s *QuestionService) GetQuestion(id int) (*models.Question, error) {
	question, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrQuestionNotFound
	}
	return question, nil
}

func (s *QuestionService) CreateQuestion(payload models.QuestionCreate) (*models.Question, error) {
	return s.repo.Create(payload)
}

func (s *QuestionService) UpdateQuestion(id int, payload models.QuestionUpdate) (*models.Question, error) {
	if _, err := s.GetQuestion(id); err != nil {
		return nil, err
	}
	return s.repo.Update(id, questionUpdateFields(payload), optionPatchFields(payload.Options))
}

func (s *QuestionService) DeleteQuestion(id int) error {
	if _, err := s.GetQuestion(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *QuestionService) GetUniqueSources() ([]string, error) {
	return s.repo.DistinctSources()
}

func (s *QuestionService) GetUniqueSubjects() ([]string, error) {
	return s.repo.DistinctSubjects()
}

func (s *QuestionService) GetUniqueChapters(subject *string) ([]string, error) {
	return s.repo.DistinctChapters(subject)
}

func (s *QuestionService) GetUniqueYears() ([]string, error) {
	return s.repo.DistinctYears()
}
