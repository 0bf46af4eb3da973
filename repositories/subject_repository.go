package repositories

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rewiselabs/rewise_neet_backend/models"
)

const chapterColumns = "id, no, name, formatted_name, no_of_questions, is_active, subject_id"
const topicColumns = "id, no, name, formatted_name, no_of_questions, is_active, chapter_id"

// SubjectRepository owns the subject -> chapter -> topic hierarchy. Nested
// tree creation runs in one transaction: a partially persisted tree is never
// observable.
type SubjectRepository struct {
	db *sql.DB
}

func NewSubjectRepository(db *sql.DB) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// --- Subjects ---

func (r *SubjectRepository) CreateSubject(payload models.SubjectCreate) (*models.Subject, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	subject := models.Subject{
		SubjectName:   payload.SubjectName,
		NoOfQuestions: payload.NoOfQuestions,
		IsActive:      payload.IsActive == nil || *payload.IsActive,
		Chapters:      []models.Chapter{},
	}
	err = tx.QueryRow(`INSERT INTO subjects (subject_name, no_of_questions, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`,
		subject.SubjectName, subject.NoOfQuestions, subject.IsActive).
		Scan(&subject.ID, &subject.CreatedAt, &subject.UpdatedAt)
	if err != nil {
		return nil, err
	}

	for _, chapterData := range payload.Chapters {
		chapter, err := insertChapter(tx, chapterData, subject.ID)
		if err != nil {
			return nil, err
		}
		subject.Chapters = append(subject.Chapters, *chapter)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *SubjectRepository) GetSubject(id int) (*models.Subject, error) {
	var s models.Subject
	err := r.db.QueryRow(`SELECT id, subject_name, no_of_questions, is_active, created_at, updated_at
		FROM subjects WHERE id = $1`, id).
		Scan(&s.ID, &s.SubjectName, &s.NoOfQuestions, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	chaptersBySubject, err := loadChapters(r.db, []int{s.ID})
	if err != nil {
		return nil, err
	}
	s.Chapters = chaptersBySubject[s.ID]
	if s.Chapters == nil {
		s.Chapters = []models.Chapter{}
	}
	return &s, nil
}

func (r *SubjectRepository) ListSubjects(skip, limit int) ([]models.Subject, error) {
	rows, err := r.db.Query(`SELECT id, subject_name, no_of_questions, is_active, created_at, updated_at
		FROM subjects ORDER BY id OFFSET $1 LIMIT $2`, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := []models.Subject{}
	ids := []int{}
	for rows.Next() {
		var s models.Subject
		if err := rows.Scan(&s.ID, &s.SubjectName, &s.NoOfQuestions, &s.IsActive,
			&s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		s.Chapters = []models.Chapter{}
		subjects = append(subjects, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		chaptersBySubject, err := loadChapters(r.db, ids)
		if err != nil {
			return nil, err
		}
		for i := range subjects {
			if chapters, ok := chaptersBySubject[subjects[i].ID]; ok {
				subjects[i].Chapters = chapters
			}
		}
	}
	return subjects, nil
}

func (r *SubjectRepository) UpdateSubject(id int, fields map[string]interface{}) (*models.Subject, error) {
	if len(fields) > 0 {
		query, args := buildUpdate("subjects", fields, id, "updated_at = CURRENT_TIMESTAMP")
		if _, err := r.db.Exec(query, args...); err != nil {
			return nil, err
		}
	}
	return r.GetSubject(id)
}

func (r *SubjectRepository) DeleteSubject(id int) error {
	_, err := r.db.Exec("DELETE FROM subjects WHERE id = $1", id)
	return err
}

// --- Chapters ---

func insertChapter(q querier, payload models.ChapterCreate, subjectID int) (*models.Chapter, error) {
	chapter := models.Chapter{
		No:            payload.No,
		Name:          payload.Name,
		FormattedName: payload.FormattedName,
		NoOfQuestions: payload.NoOfQuestions,
		IsActive:      payload.IsActive == nil || *payload.IsActive,
		SubjectID:     subjectID,
		Topics:        []models.Topic{},
	}
	err := q.QueryRow(`INSERT INTO chapters (no, name, formatted_name, no_of_questions, is_active, subject_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		chapter.No, chapter.Name, chapter.FormattedName, chapter.NoOfQuestions,
		chapter.IsActive, chapter.SubjectID).
		Scan(&chapter.ID)
	if err != nil {
		return nil, err
	}

	for _, topicData := range payload.Topics {
		topic, err := insertTopic(q, topicData, chapter.ID)
		if err != nil {
			return nil, err
		}
		chapter.Topics = append(chapter.Topics, *topic)
	}
	return &chapter, nil
}

func (r *SubjectRepository) CreateChapter(payload models.ChapterCreate) (*models.Chapter, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	chapter, err := insertChapter(tx, payload, payload.SubjectID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (r *SubjectRepository) GetChapter(id int) (*models.Chapter, error) {
	var c models.Chapter
	err := r.db.QueryRow("SELECT "+chapterColumns+" FROM chapters WHERE id = $1", id).
		Scan(&c.ID, &c.No, &c.Name, &c.FormattedName, &c.NoOfQuestions, &c.IsActive, &c.SubjectID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	topicsByChapter, err := loadTopics(r.db, []int{c.ID})
	if err != nil {
		return nil, err
	}
	c.Topics = topicsByChapter[c.ID]
	if c.Topics == nil {
		c.Topics = []models.Topic{}
	}
	return &c, nil
}

func (r *SubjectRepository) ListChaptersBySubject(subjectID, skip, limit int) ([]models.Chapter, error) {
	rows, err := r.db.Query("SELECT "+chapterColumns+` FROM chapters
		WHERE subject_id = $1 ORDER BY id OFFSET $2 LIMIT $3`, subjectID, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chapters, err := scanChapters(rows)
	if err != nil {
		return nil, err
	}
	return attachTopics(r.db, chapters)
}

func (r *SubjectRepository) UpdateChapter(id int, fields map[string]interface{}) (*models.Chapter, error) {
	if len(fields) > 0 {
		query, args := buildUpdate("chapters", fields, id, "")
		if _, err := r.db.Exec(query, args...); err != nil {
			return nil, err
		}
	}
	return r.GetChapter(id)
}

func (r *SubjectRepository) DeleteChapter(id int) error {
	_, err := r.db.Exec("DELETE FROM chapters WHERE id = $1", id)
	return err
}

// --- Topics ---

func insertTopic(q querier, payload models.TopicCreate, chapterID int) (*models.Topic, error) {
	topic := models.Topic{
		No:            payload.No,
		Name:          payload.Name,
		FormattedName: payload.FormattedName,
		NoOfQuestions: payload.NoOfQuestions,
		IsActive:      payload.IsActive == nil || *payload.IsActive,
		ChapterID:     chapterID,
	}
	err := q.QueryRow(`INSERT INTO topics (no, name, formatted_name, no_of_questions, is_active, chapter_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		topic.No, topic.Name, topic.FormattedName, topic.NoOfQuestions,
		topic.IsActive, topic.ChapterID).
		Scan(&topic.ID)
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *SubjectRepository) CreateTopic(payload models.TopicCreate, chapterID int) (*models.Topic, error) {
	return insertTopic(r.db, payload, chapterID)
}

func (r *SubjectRepository) GetTopic(id int) (*models.Topic, error) {
	var t models.Topic
	err := r.db.QueryRow("SELECT "+topicColumns+" FROM topics WHERE id = $1", id).
		Scan(&t.ID, &t.No, &t.Name, &t.FormattedName, &t.NoOfQuestions, &t.IsActive, &t.ChapterID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SubjectRepository) ListTopicsByChapter(chapterID, skip, limit int) ([]models.Topic, error) {
	rows, err := r.db.Query("SELECT "+topicColumns+` FROM topics
		WHERE chapter_id = $1 ORDER BY id OFFSET $2 LIMIT $3`, chapterID, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTopics(rows)
}

func (r *SubjectRepository) UpdateTopic(id int, fields map[string]interface{}) (*models.Topic, error) {
	if len(fields) > 0 {
		query, args := buildUpdate("topics", fields, id, "")
		if _, err := r.db.Exec(query, args...); err != nil {
			return nil, err
		}
	}
	return r.GetTopic(id)
}

func (r *SubjectRepository) DeleteTopic(id int) error {
	_, err := r.db.Exec("DELETE FROM topics WHERE id = $1", id)
	return err
}

// --- tree loading helpers ---

func scanChapters(rows *sql.Rows) ([]models.Chapter, error) {
	chapters := []models.Chapter{}
	for rows.Next() {
		var c models.Chapter
		if err := rows.Scan(&c.ID, &c.No, &c.Name, &c.FormattedName,
			&c.NoOfQuestions, &c.IsActive, &c.SubjectID); err != nil {
			return nil, err
		}
		c.Topics = []models.Topic{}
		chapters = append(chapters, c)
	}
	return chapters, rows.Err()
}

func scanTopics(rows *sql.Rows) ([]models.Topic, error) {
	topics := []models.Topic{}
	for rows.Next() {
		var t models.Topic
		if err := rows.Scan(&t.ID, &t.No, &t.Name, &t.FormattedName,
			&t.NoOfQuestions, &t.IsActive, &t.ChapterID); err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

func attachTopics(q querier, chapters []models.Chapter) ([]models.Chapter, error) {
	if len(chapters) == 0 {
		return chapters, nil
	}
	ids := make([]int, 0, len(chapters))
	for _, c := range chapters {
		ids = append(ids, c.ID)
	}
	topicsByChapter, err := loadTopics(q, ids)
	if err != nil {
		return nil, err
	}
	for i := range chapters {
		if topics, ok := topicsByChapter[chapters[i].ID]; ok {
			chapters[i].Topics = topics
		}
	}
	return chapters, nil
}

func loadChapters(q querier, subjectIDs []int) (map[int][]models.Chapter, error) {
	rows, err := q.Query("SELECT "+chapterColumns+` FROM chapters
		WHERE subject_id = ANY($1) ORDER BY id`, pq.Array(subjectIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	chapters, err := scanChapters(rows)
	if err != nil {
		return nil, err
	}
	chapters, err = attachTopics(q, chapters)
	if err != nil {
		return nil, err
	}

	bySubject := map[int][]models.Chapter{}
	for _, c := range chapters {
		bySubject[c.SubjectID] = append(bySubject[c.SubjectID], c)
	}
	return bySubject, nil
}

func loadTopics(q querier, chapterIDs []int) (map[int][]models.Topic, error) {
	rows, err := q.Query("SELECT "+topicColumns+` FROM topics
		WHERE chapter_id = ANY($1) ORDER BY id`, pq.Array(chapterIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	topics, err := scanTopics(rows)
	if err != nil {
		return nil, err
	}
	byChapter := map[int][]models.Topic{}
	for _, t := range topics {
		byChapter[t.ChapterID] = append(byChapter[t.ChapterID], t)
	}
	return byChapter, nil
}
