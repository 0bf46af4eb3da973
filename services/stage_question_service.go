package services

import (
	"database/sql"

	"github.com/rewiselabs/rewise_neet_backend/models"
	"github.com/rewiselabs/rewise_neet_backend/repositories"
)

type StageQuestionService struct {
	repo      *repositories.StageQuestionRepository
	questions *repositories.QuestionRepository
}

func NewStageQuestionService(db *sql.DB) *StageQuestionService {
	return &StageQuestionService{
		repo:      repositories.NewStageQuestionRepository(db),
		questions: repositories.NewQuestionRepository(db),
	}
}

func (s *StageQuestionService) ListQuestions() ([]models.StageQuestion, error) {
	return s.repo.List()
}

func (s *StageQuestionService) SearchQuestionsByYear(year string) ([]models.StageQuestion, error) {
	return s.repo.ListByYear(year)
}

func (s *StageQuestionService) SearchQuestions(filters repositories.SearchFilters) ([]models.StageQuestion, error) {
	return s.repo.Search(filters)
}

func (s *StageQuestionService) GetQuestionByQuestionNumber(year, questionNumber string) (*models.StageQuestion, error) {
	question, err := s.repo.GetByQuestionNumber(year, questionNumber)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrStageQuestionNotFound
	}
	return question, nil
}

func (s *StageQuestionService) GetQuestion(id int) (*models.StageQuestion, error) {
	question, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, ErrStageQuestionNotFound
	}
	return question, nil
}

func (s *StageQuestionService) CreateQuestion(payload models.StageQuestionCreate) (*models.StageQuestion, error) {
	return s.repo.Create(payload)
}

func (s *StageQuestionService) UpdateQuestion(id int, payload models.StageQuestionUpdate) (*models.StageQuestion, error) {
	if _, err := s.GetQuestion(id); err != nil {
		return nil, err
	}
	return s.repo.Update(id, stageQuestionUpdateFields(payload), optionPatchFields(payload.Options))
}

func (s *StageQuestionService) DeleteQuestion(id int) error {
	if _, err := s.GetQuestion(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *StageQuestionService) GetUniqueSources() ([]string, error) {
	return s.repo.DistinctSources()
}

func (s *StageQuestionService) GetUniqueSubjects() ([]string, error) {
	return s.repo.DistinctSubjects()
}

func (s *StageQuestionService) GetUniqueChapters(subject *string) ([]string, error) {
	return s.repo.DistinctChapters(subject)
}

func (s *StageQuestionService) GetUniqueYears() ([]string, error) {
	return s.repo.DistinctYears()
}

// MoveQuestion promotes a staged question into the published questions table.
// Every scalar field and the full option list are copied; the stage row is
// stamped with the new question id so a second promotion fails with
// ErrAlreadyPromoted instead of silently duplicating the question.
func (s *StageQuestionService) MoveQuestion(id int) (*models.Question, error) {
	stage, err := s.GetQuestion(id)
	if err != nil {
		return nil, err
	}
	if stage.PublishedQuestionID != nil {
		return nil, ErrAlreadyPromoted
	}

	payload := models.QuestionCreate{
		Source:             stage.Source,
		Year:               stage.Year,
		Subject:            stage.Subject,
		Chapter:            stage.Chapter,
		Topic:              stage.Topic,
		QuestionNumber:     stage.QuestionNumber,
		QuestionText:       stage.QuestionText,
		Difficulty:         stage.Difficulty,
		HasDiagram:         stage.HasDiagram,
		DiagramDescription: stage.DiagramDescription,
		DiagramPosition:    stage.DiagramPosition,
		DiagramName:        stage.DiagramName,
		Answer:             stage.Answer,
		AiAnswer:           stage.AiAnswer,
		Solution:           stage.Solution,
	}
	for _, opt := range stage.Options {
		payload.Options = append(payload.Options, models.OptionCreate{
			Label:              opt.Label,
			Text:               opt.Text,
			HasDiagram:         opt.HasDiagram,
			DiagramDescription: opt.DiagramDescription,
			DiagramName:        opt.DiagramName,
		})
	}
	return s.questions.CreateFromStage(payload, stage.ID)
}
