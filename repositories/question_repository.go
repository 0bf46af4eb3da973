package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/rewiselabs/rewise_neet_backend/models"
)

const questionColumns = `id, source, year, subject, chapter, topic, question_number,
	question_text, difficulty, has_diagram, diagram_description, diagram_position,
	diagram_name, answer, ai_answer, solution, created_at, updated_at`

const optionColumns = "id, question_id, label, text, has_diagram, diagram_description, diagram_name"

type QuestionRepository struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func scanQuestions(rows *sql.Rows) ([]models.Question, error) {
	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Source, &q.Year, &q.Subject, &q.Chapter, &q.Topic,
			&q.QuestionNumber, &q.QuestionText, &q.Difficulty, &q.HasDiagram,
			&q.DiagramDescription, &q.DiagramPosition, &q.DiagramName, &q.Answer,
			&q.AiAnswer, &q.Solution, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		q.Options = []models.Option{}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r *QuestionRepository) attachOptions(questions []models.Question) ([]models.Question, error) {
	if len(questions) == 0 {
		return questions, nil
	}
	ids := make([]int, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	rows, err := r.db.Query("SELECT "+optionColumns+` FROM options
		WHERE question_id = ANY($1) ORDER BY id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byQuestion := map[int][]models.Option{}
	for rows.Next() {
		var o models.Option
		if err := rows.Scan(&o.ID, &o.QuestionID, &o.Label, &o.Text,
			&o.HasDiagram, &o.DiagramDescription, &o.DiagramName); err != nil {
			return nil, err
		}
		byQuestion[o.QuestionID] = append(byQuestion[o.QuestionID], o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range questions {
		if options, ok := byQuestion[questions[i].ID]; ok {
			questions[i].Options = options
		}
	}
	return questions, nil
}

func (r *QuestionRepository) queryMany(query string, args ...interface{}) ([]models.Question, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions, err := scanQuestions(rows)
	if err != nil {
		return nil, err
	}
	return r.attachOptions(questions)
}

func (r *QuestionRepository) List() ([]models.Question, error) {
	return r.queryMany("SELECT " + questionColumns + " FROM questions ORDER BY id")
}

func (r *QuestionRepository) ListByYear(year string) ([]models.Question, error) {
	return r.queryMany("SELECT "+questionColumns+` FROM questions
		WHERE year = $1 ORDER BY question_number::int`, year)
}

func (r *QuestionRepository) Search(filters SearchFilters) ([]models.Question, error) {
	query := "SELECT " + questionColumns + " FROM questions"

	var conditions []string
	var args []interface{}
	argID := 1
	if filters.Year != nil {
		conditions = append(conditions, fmt.Sprintf("year = $%d", argID))
		args = append(args, *filters.Year)
		argID++
	}
	if filters.Source != nil {
		conditions = append(conditions, fmt.Sprintf("source = $%d", argID))
		args = append(args, *filters.Source)
		argID++
	}
	if filters.Subject != nil {
		conditions = append(conditions, fmt.Sprintf("subject = $%d", argID))
		args = append(args, *filters.Subject)
		argID++
	}
	if filters.Chapter != nil {
		conditions = append(conditions, fmt.Sprintf("chapter = $%d", argID))
		args = append(args, *filters.Chapter)
		argID++
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"
	return r.queryMany(query, args...)
}

func (r *QuestionRepository) GetByQuestionNumber(year, questionNumber string) (*models.Question, error) {
	questions, err := r.queryMany("SELECT "+questionColumns+` FROM questions
		WHERE year = $1 AND question_number = $2 ORDER BY id LIMIT 1`, year, questionNumber)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, nil
	}
	return &questions[0], nil
}

func (r *QuestionRepository) Get(id int) (*models.Question, error) {
	questions, err := r.queryMany("SELECT "+questionColumns+" FROM questions WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, nil
	}
	return &questions[0], nil
}

func insertQuestion(q querier, payload models.QuestionCreate) (int, error) {
	var id int
	err := q.QueryRow(`INSERT INTO questions (
			source, year, subject, chapter, topic, question_number, question_text,
			difficulty, has_diagram, diagram_description, diagram_position,
			diagram_name, answer, ai_answer, solution
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING id`,
		payload.Source, payload.Year, payload.Subject, payload.Chapter, payload.Topic,
		payload.QuestionNumber, payload.QuestionText, payload.Difficulty,
		payload.HasDiagram, payload.DiagramDescription, payload.DiagramPosition,
		payload.DiagramName, payload.Answer, payload.AiAnswer, payload.Solution).
		Scan(&id)
	if err != nil {
		return 0, err
	}

	for _, opt := range payload.Options {
		_, err = q.Exec(`INSERT INTO options (question_id, label, text, has_diagram, diagram_description, diagram_name)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			id, opt.Label, opt.Text, opt.HasDiagram, opt.DiagramDescription, opt.DiagramName)
		if err != nil {
			return 0, err
		}
	}
	return id, nil
}

func (r *QuestionRepository) Create(payload models.QuestionCreate) (*models.Question, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	id, err := insertQuestion(tx, payload)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.Get(id)
}

// CreateFromStage publishes a staged question: the new question row, its
// options and the published_question_id back-reference on the stage row all
// commit together. The stage row is also marked reviewed.
func (r *QuestionRepository) CreateFromStage(payload models.QuestionCreate, stageID int) (*models.Question, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	id, err := insertQuestion(tx, payload)
	if err != nil {
		return nil, err
	}
	_, err = tx.Exec(`UPDATE stage_questions
		SET published_question_id = $1, reviewed = true, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`, id, stageID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.Get(id)
}

func (r *QuestionRepository) Update(id int, fields map[string]interface{}, optionFields map[int]map[string]interface{}) (*models.Question, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if len(fields) > 0 {
		query, args := buildUpdate("questions", fields, id, "updated_at = CURRENT_TIMESTAMP")
		if _, err := tx.Exec(query, args...); err != nil {
			return nil, err
		}
	}
	for optionID, optFields := range optionFields {
		if len(optFields) == 0 {
			continue
		}
		query, args := buildUpdate("options", optFields, optionID, "")
		query += fmt.Sprintf(" AND question_id = $%d", len(args)+1)
		args = append(args, id)
		if _, err := tx.Exec(query, args...); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.Get(id)
}

func (r *QuestionRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM questions WHERE id = $1", id)
	return err
}

func (r *QuestionRepository) DistinctSources() ([]string, error) {
	return distinctStrings(r.db,
		"SELECT DISTINCT source FROM questions WHERE source IS NOT NULL AND source <> '' ORDER BY source")
}

func (r *QuestionRepository) DistinctSubjects() ([]string, error) {
	return distinctStrings(r.db,
		"SELECT DISTINCT subject FROM questions WHERE subject IS NOT NULL AND subject <> '' ORDER BY subject")
}

func (r *QuestionRepository) DistinctChapters(subject *string) ([]string, error) {
	if subject != nil {
		return distinctStrings(r.db,
			"SELECT DISTINCT chapter FROM questions WHERE chapter IS NOT NULL AND chapter <> '' AND subject = $1 ORDER BY chapter",
			*subject)
	}
	return distinctStrings(r.db,
		"SELECT DISTINCT chapter FROM questions WHERE chapter IS NOT NULL AND chapter <> '' ORDER BY chapter")
}

func (r *QuestionRepository) DistinctYears() ([]string, error) {
	return distinctStrings(r.db,
		"SELECT DISTINCT year FROM questions WHERE year IS NOT NULL AND year <> '' ORDER BY year")
}
