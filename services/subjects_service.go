package services

import (
	"database/sql"

	"github.com/rewiselabs/rewise_neet_backend/models"
	"github.com/rewiselabs/rewise_neet_backend/repositories"
	"github.com/rewiselabs/rewise_neet_backend/util"
)

type SubjectsService struct {
	repo *repositories.SubjectRepository
}

func NewSubjectsService(db *sql.DB) *SubjectsService {
	return &SubjectsService{repo: repositories.NewSubjectRepository(db)}
}

// --- Subjects ---

// CreateSubject persists a subject together with any embedded chapter/topic
// tree in one transaction. Missing formatted_name values are derived from the
// display name.
func (s *SubjectsService) CreateSubject(payload models.SubjectCreate) (*models.Subject, error) {
	for i := range payload.Chapters {
		normalizeChapterCreate(&payload.Chapters[i])
	}
	return s.repo.CreateSubject(payload)
}

func (s *SubjectsService) GetSubject(id int) (*models.Subject, error) {
	subject, err := s.repo.GetSubject(id)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, ErrSubjectNotFound
	}
	return subject, nil
}

func (s *SubjectsService) ListSubjects(skip, limit int) ([]models.Subject, error) {
	return s.repo.ListSubjects(skip, limit)
}

func (s *SubjectsService) UpdateSubject(id int, payload models.SubjectUpdate) (*models.Subject, error) {
	if _, err := s.GetSubject(id); err != nil {
		return nil, err
	}
	return s.repo.UpdateSubject(id, subjectUpdateFields(payload))
}

func (s *SubjectsService) DeleteSubject(id int) error {
	if _, err := s.GetSubject(id); err != nil {
		return err
	}
	return s.repo.DeleteSubject(id)
}

// --- Chapters ---

func normalizeChapterCreate(chapter *models.ChapterCreate) {
	if chapter.FormattedName == "" {
		chapter.FormattedName = util.FormatName(chapter.Name)
	}
	for i := range chapter.Topics {
		normalizeTopicCreate(&chapter.Topics[i])
	}
}

func normalizeTopicCreate(topic *models.TopicCreate) {
	if topic.FormattedName == "" {
		topic.FormattedName = util.FormatName(topic.Name)
	}
}

func (s *SubjectsService) CreateChapter(payload models.ChapterCreate) (*models.Chapter, error) {
	if _, err := s.GetSubject(payload.SubjectID); err != nil {
		return nil, err
	}
	normalizeChapterCreate(&payload)
	return s.repo.CreateChapter(payload)
}

func (s *SubjectsService) GetChapter(id int) (*models.Chapter, error) {
	chapter, err := s.repo.GetChapter(id)
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, ErrChapterNotFound
	}
	return chapter, nil
}

func (s *SubjectsService) ListChaptersBySubject(subjectID, skip, limit int) ([]models.Chapter, error) {
	if _, err := s.GetSubject(subjectID); err != nil {
		return nil, err
	}
	return s.repo.ListChaptersBySubject(subjectID, skip, limit)
}

func (s *SubjectsService) UpdateChapter(id int, payload models.ChapterUpdate) (*models.Chapter, error) {
	if _, err := s.GetChapter(id); err != nil {
		return nil, err
	}
	// A reparent must point at a live subject.
	if payload.SubjectID.Set && !payload.SubjectID.Null {
		if _, err := s.GetSubject(payload.SubjectID.Value); err != nil {
			return nil, err
		}
	}
	return s.repo.UpdateChapter(id, chapterUpdateFields(payload))
}

func (s *SubjectsService) DeleteChapter(id int) error {
	if _, err := s.GetChapter(id); err != nil {
		return err
	}
	return s.repo.DeleteChapter(id)
}

// --- Topics ---

func (s *SubjectsService) CreateTopic(payload models.TopicCreate, chapterID int) (*models.Topic, error) {
	if _, err := s.GetChapter(chapterID); err != nil {
		return nil, err
	}
	normalizeTopicCreate(&payload)
	return s.repo.CreateTopic(payload, chapterID)
}

func (s *SubjectsService) GetTopic(id int) (*models.Topic, error) {
	topic, err := s.repo.GetTopic(id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, ErrTopicNotFound
	}
	return topic, nil
}

func (s *SubjectsService) ListTopicsByChapter(chapterID, skip, limit int) ([]models.Topic, error) {
	if _, err := s.GetChapter(chapterID); err != nil {
		return nil, err
	}
	return s.repo.ListTopicsByChapter(chapterID, skip, limit)
}

func (s *SubjectsService) UpdateTopic(id int, payload models.TopicUpdate) (*models.Topic, error) {
	if _, err := s.GetTopic(id); err != nil {
		return nil, err
	}
	if payload.ChapterID.Set && !payload.ChapterID.Null {
		if _, err := s.GetChapter(payload.ChapterID.Value); err != nil {
			return nil, err
		}
	}
	return s.repo.UpdateTopic(id, topicUpdateFields(payload))
}

func (s *SubjectsService) DeleteTopic(id int) error {
	if _, err := s.GetTopic(id); err != nil {
		return err
	}
	return s.repo.DeleteTopic(id)
}
