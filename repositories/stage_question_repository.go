package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/rewiselabs/rewise_neet_backend/models"
)

const stageQuestionColumns = `id, source, year, subject, chapter, topic, question_number,
	question_text, difficulty, has_diagram, diagram_description, diagram_position,
	diagram_name, answer, ai_answer, solution, reviewed, published_question_id,
	created_at, updated_at`

const stageOptionColumns = "id, question_id, label, text, has_diagram, diagram_description, diagram_name"

// SearchFilters is a conjunctive equality filter set. A nil field means "no
// constraint", not "match empty". Reviewed only applies to staged questions.
type SearchFilters struct {
	Year     *string
	Source   *string
	Subject  *string
	Chapter  *string
	Reviewed *bool
}

type StageQuestionRepository struct {
	db *sql.DB
}

func NewStageQuestionRepository(db *sql.DB) *StageQuestionRepository {
	return &StageQuestionRepository{db: db}
}

func scanStageQuestions(rows *sql.Rows) ([]models.StageQuestion, error) {
	questions := []models.StageQuestion{}
	for rows.Next() {
		var q models.StageQuestion
		if err := rows.Scan(&q.ID, &q.Source, &q.Year, &q.Subject, &q.Chapter, &q.Topic,
			&q.QuestionNumber, &q.QuestionText, &q.Difficulty, &q.HasDiagram,
			&q.DiagramDescription, &q.DiagramPosition, &q.DiagramName, &q.Answer,
			&q.AiAnswer, &q.Solution, &q.Reviewed, &q.PublishedQuestionID,
			&q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		q.Options = []models.StageOption{}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

func (r *StageQuestionRepository) attachOptions(questions []models.StageQuestion) ([]models.StageQuestion, error) {
	if len(questions) == 0 {
		return questions, nil
	}
	ids := make([]int, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	rows, err := r.db.Query("SELECT "+stageOptionColumns+` FROM stage_options
		WHERE question_id = ANY($1) ORDER BY id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byQuestion := map[int][]models.StageOption{}
	for rows.Next() {
		var o models.StageOption
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

func (r *StageQuestionRepository) queryMany(query string, args ...interface{}) ([]models.StageQuestion, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	questions, err := scanStageQuestions(rows)
	if err != nil {
		return nil, err
	}
	return r.attachOptions(questions)
}

func (r *StageQuestionRepository) List() ([]models.StageQuestion, error) {
	return r.queryMany("SELECT " + stageQuestionColumns + " FROM stage_questions ORDER BY id")
}

// ListByYear orders by the numeric value of question_number. Callers must
// guarantee numeric question numbers; the controller validates this.
func (r *StageQuestionRepository) ListByYear(year string) ([]models.StageQuestion, error) {
	return r.queryMany("SELECT "+stageQuestionColumns+` FROM stage_questions
		WHERE year = $1 ORDER BY question_number::int`, year)
}

func (r *StageQuestionRepository) Search(filters SearchFilters) ([]models.StageQuestion, error) {
	query := "SELECT " + stageQuestionColumns + " FROM stage_questions"

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
	if filters.Reviewed != nil {
		conditions = append(conditions, fmt.Sprintf("reviewed = $%d", argID))
		args = append(args, *filters.Reviewed)
		argID++
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id"
	return r.queryMany(query, args...)
}

// GetByQuestionNumber returns the lowest-id match when duplicates exist.
// Staged imports legitimately carry duplicates before review, so the schema
// does not forbid them.
func (r *StageQuestionRepository) GetByQuestionNumber(year, questionNumber string) (*models.StageQuestion, error) {
	questions, err := r.queryMany("SELECT "+stageQuestionColumns+` FROM stage_questions
		WHERE year = $1 AND question_number = $2 ORDER BY id LIMIT 1`, year, questionNumber)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, nil
	}
	return &questions[0], nil
}

func (r *StageQuestionRepository) Get(id int) (*models.StageQuestion, error) {
	questions, err := r.queryMany("SELECT "+stageQuestionColumns+" FROM stage_questions WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, nil
	}
	return &questions[0], nil
}

func (r *StageQuestionRepository) Create(payload models.StageQuestionCreate) (*models.StageQuestion, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var id int
	err = tx.QueryRow(`INSERT INTO stage_questions (
			source, year, subject, chapter, topic, question_number, question_text,
			difficulty, has_diagram, diagram_description, diagram_position,
			diagram_name, answer, ai_answer, solution, reviewed
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
		RETURNING id`,
		payload.Source, payload.Year, payload.Subject, payload.Chapter, payload.Topic,
		payload.QuestionNumber, payload.QuestionText, payload.Difficulty,
		payload.HasDiagram, payload.DiagramDescription, payload.DiagramPosition,
		payload.DiagramName, payload.Answer, payload.AiAnswer, payload.Solution,
		payload.Reviewed).
		Scan(&id)
	if err != nil {
		return nil, err
	}

	for _, opt := range payload.Options {
		_, err = tx.Exec(`INSERT INTO stage_options (question_id, label, text, has_diagram, diagram_description, diagram_name)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			id, opt.Label, opt.Text, opt.HasDiagram, opt.DiagramDescription, opt.DiagramName)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return r.Get(id)
}

// Update applies a partial-field merge to the question row and, when
// optionFields is non-empty, to individual options matched by id. Option
// patches that do not match an existing option of this question are ignored;
// options cannot be added or removed through this path.
func (r *StageQuestionRepository) Update(id int, fields map[string]interface{}, optionFields map[int]map[string]interface{}) (*models.StageQuestion, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if len(fields) > 0 {
		query, args := buildUpdate("stage_questions", fields, id, "updated_at = CURRENT_TIMESTAMP")
		if _, err := tx.Exec(query, args...); err != nil {
			return nil, err
		}
	}
	for optionID, optFields := range optionFields {
		if len(optFields) == 0 {
			continue
		}
		query, args := buildUpdate("stage_options", optFields, optionID, "")
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

func (r *StageQuestionRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM stage_questions WHERE id = $1", id)
	return err
}

func (r *StageQuestionRepository) DistinctSources() ([]string, error) {
	return distinctStrings(r.db,
		"SELECT DISTINCT source FROM stage_questions WHERE source IS NOT NULL AND source <> '' ORDER BY source")
}

func (r *StageQuestionRepository) DistinctSubjects() ([]string, error) {
	return distinctStrings(r.db,
		"SELECT DISTINCT subject FROM stage_questions WHERE subject IS NOT NULL AND subject <> '' ORDER BY subject")
}

func (r *StageQuestionRepository) DistinctChapters(subject *string) ([]string, error) {
	if subject != nil {
		return distinctStrings(r.db,
			"SELECT DISTINCT chapter FROM stage_questions WHERE chapter IS NOT NULL AND chapter <> '' AND subject = $1 ORDER BY chapter",
			*subject)
	}
	return distinctStrings(r.db,
		"SELECT DISTINCT chapter FROM stage_questions WHERE chapter IS NOT NULL AND chapter <> '' ORDER BY chapter")
}

func (r *StageQuestionRepository) DistinctYears() ([]string, error) {
	return distinctStrings(r.db,
		"SELECT DISTINCT year FROM stage_questions WHERE year IS NOT NULL AND year <> '' ORDER BY year")
}
