package models

import (
	"encoding/json"
	"time"
)

// User model
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Mobile       string    `json:"mobile"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Subject model, root of the subject -> chapter -> topic hierarchy
type Subject struct {
	ID            int       `json:"id"`
	SubjectName   string    `json:"subject_name"`
	NoOfQuestions *int      `json:"no_of_questions"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Chapters      []Chapter `json:"chapters"`
}

type Chapter struct {
	ID            int     `json:"id"`
	No            string  `json:"no"`
	Name          string  `json:"name"`
	FormattedName string  `json:"formatted_name"`
	NoOfQuestions *int    `json:"no_of_questions"`
	IsActive      bool    `json:"is_active"`
	SubjectID     int     `json:"subject_id"`
	Topics        []Topic `json:"topics"`
}

type Topic struct {
	ID            int    `json:"id"`
	No            string `json:"no"`
	Name          string `json:"name"`
	FormattedName string `json:"formatted_name"`
	NoOfQuestions *int   `json:"no_of_questions"`
	IsActive      bool   `json:"is_active"`
	ChapterID     int    `json:"chapter_id"`
}

// StageQuestion is an unreviewed candidate question. PublishedQuestionID is
// set once the row has been promoted into the published questions table.
type StageQuestion struct {
	ID                  int           `json:"id"`
	Source              string        `json:"source"`
	Year                string        `json:"year"`
	Subject             string        `json:"subject"`
	Chapter             string        `json:"chapter"`
	Topic               string        `json:"topic"`
	QuestionNumber      string        `json:"question_number"`
	QuestionText        string        `json:"question_text"`
	Difficulty          *string       `json:"difficulty"`
	HasDiagram          bool          `json:"has_diagram"`
	DiagramDescription  *string       `json:"diagram_description"`
	DiagramPosition     *string       `json:"diagram_position"`
	DiagramName         *string       `json:"diagram_name"`
	Answer              string        `json:"answer"`
	AiAnswer            *string       `json:"ai_answer"`
	Solution            *string       `json:"solution"`
	Reviewed            bool          `json:"reviewed"`
	PublishedQuestionID *int          `json:"published_question_id"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
	Options             []StageOption `json:"options"`
}

type StageOption struct {
	ID                 int     `json:"id"`
	QuestionID         int     `json:"question_id"`
	Label              string  `json:"label"`
	Text               string  `json:"text"`
	HasDiagram         bool    `json:"has_diagram"`
	DiagramDescription *string `json:"diagram_description"`
	DiagramName        *string `json:"diagram_name"`
}

// Question is a published, reviewed question
type Question struct {
	ID                 int       `json:"id"`
	Source             string    `json:"source"`
	Year               string    `json:"year"`
	Subject            string    `json:"subject"`
	Chapter            string    `json:"chapter"`
	Topic              string    `json:"topic"`
	QuestionNumber     string    `json:"question_number"`
	QuestionText       string    `json:"question_text"`
	Difficulty         *string   `json:"difficulty"`
	HasDiagram         bool      `json:"has_diagram"`
	DiagramDescription *string   `json:"diagram_description"`
	DiagramPosition    *string   `json:"diagram_position"`
	DiagramName        *string   `json:"diagram_name"`
	Answer             string    `json:"answer"`
	AiAnswer           *string   `json:"ai_answer"`
	Solution           *string   `json:"solution"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
	Options            []Option  `json:"options"`
}

type Option struct {
	ID                 int     `json:"id"`
	QuestionID         int     `json:"question_id"`
	Label              string  `json:"label"`
	Text               string  `json:"text"`
	HasDiagram         bool    `json:"has_diagram"`
	DiagramDescription *string `json:"diagram_description"`
	DiagramName        *string `json:"diagram_name"`
}

// MockTest model. Questions is an opaque JSON blob assembled at prepare time.
type MockTest struct {
	ID          int             `json:"id"`
	MarksScored int             `json:"marks_scored"`
	TestStatus  string          `json:"test_status"`
	Questions   json.RawMessage `json:"questions"`
	TimeTaken   int             `json:"time_taken"`
	UserID      int             `json:"user_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TestSettings is a key/value configuration row. Keys are not unique at the
// store level; lookup by key returns the lowest-id match.
type TestSettings struct {
	ID        int       `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
