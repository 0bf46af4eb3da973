package models

import "encoding/json"

// Create and update payloads for the HTTP layer. Create payloads carry
// validator tags; update payloads use Opt so that an absent key, an explicit
// null and a real value stay distinguishable.

type UserCreate struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Mobile   string `json:"mobile" validate:"required,max=32"`
	Password string `json:"password" validate:"required,min=6,max=255"`
	Role     string `json:"role" validate:"omitempty,max=64"`
	IsActive *bool  `json:"is_active"`
}

type UserUpdate struct {
	Name     Opt[string] `json:"name"`
	Mobile   Opt[string] `json:"mobile"`
	Password Opt[string] `json:"password"`
	Role     Opt[string] `json:"role"`
	IsActive Opt[bool]   `json:"is_active"`
}

type TopicCreate struct {
	No            string `json:"no" validate:"required"`
	Name          string `json:"name" validate:"required"`
	FormattedName string `json:"formatted_name"`
	NoOfQuestions *int   `json:"no_of_questions"`
	IsActive      *bool  `json:"is_active"`
}

type ChapterCreate struct {
	No            string        `json:"no" validate:"required"`
	Name          string        `json:"name" validate:"required"`
	FormattedName string        `json:"formatted_name"`
	NoOfQuestions *int          `json:"no_of_questions"`
	IsActive      *bool         `json:"is_active"`
	SubjectID     int           `json:"subject_id"`
	Topics        []TopicCreate `json:"topics"`
}

type SubjectCreate struct {
	SubjectName   string          `json:"subject_name" validate:"required"`
	NoOfQuestions *int            `json:"no_of_questions"`
	IsActive      *bool           `json:"is_active"`
	Chapters      []ChapterCreate `json:"chapters" validate:"dive"`
}

type SubjectUpdate struct {
	SubjectName   Opt[string] `json:"subject_name"`
	NoOfQuestions Opt[int]    `json:"no_of_questions"`
	IsActive      Opt[bool]   `json:"is_active"`
}

type ChapterUpdate struct {
	No            Opt[string] `json:"no"`
	Name          Opt[string] `json:"name"`
	FormattedName Opt[string] `json:"formatted_name"`
	NoOfQuestions Opt[int]    `json:"no_of_questions"`
	IsActive      Opt[bool]   `json:"is_active"`
	SubjectID     Opt[int]    `json:"subject_id"`
}

type TopicUpdate struct {
	No            Opt[string] `json:"no"`
	Name          Opt[string] `json:"name"`
	FormattedName Opt[string] `json:"formatted_name"`
	NoOfQuestions Opt[int]    `json:"no_of_questions"`
	IsActive      Opt[bool]   `json:"is_active"`
	ChapterID     Opt[int]    `json:"chapter_id"`
}

type OptionCreate struct {
	Label              string  `json:"label" validate:"required,max=50"`
	Text               string  `json:"text" validate:"required"`
	HasDiagram         bool    `json:"has_diagram"`
	DiagramDescription *string `json:"diagram_description"`
	DiagramName        *string `json:"diagram_name"`
}

type OptionUpdate struct {
	ID                 int         `json:"id" validate:"required"`
	Label              Opt[string] `json:"label"`
	Text               Opt[string] `json:"text"`
	HasDiagram         Opt[bool]   `json:"has_diagram"`
	DiagramDescription Opt[string] `json:"diagram_description"`
	DiagramName        Opt[string] `json:"diagram_name"`
}

type StageQuestionCreate struct {
	Source             string         `json:"source" validate:"required,max=255"`
	Year               string         `json:"year" validate:"required,max=50"`
	Subject            string         `json:"subject" validate:"required,max=255"`
	Chapter            string         `json:"chapter" validate:"required,max=255"`
	Topic              string         `json:"topic" validate:"required,max=255"`
	QuestionNumber     string         `json:"question_number" validate:"required,max=50"`
	QuestionText       string         `json:"question_text" validate:"required"`
	Difficulty         *string        `json:"difficulty"`
	HasDiagram         bool           `json:"has_diagram"`
	DiagramDescription *string        `json:"diagram_description"`
	DiagramPosition    *string        `json:"diagram_position"`
	DiagramName        *string        `json:"diagram_name"`
	Answer             string         `json:"answer" validate:"required,max=50"`
	AiAnswer           *string        `json:"ai_answer"`
	Solution           *string        `json:"solution"`
	Reviewed           bool           `json:"reviewed"`
	Options            []OptionCreate `json:"options" validate:"dive"`
}

type StageQuestionUpdate struct {
	Source             Opt[string]    `json:"source"`
	Year               Opt[string]    `json:"year"`
	Subject            Opt[string]    `json:"subject"`
	Chapter            Opt[string]    `json:"chapter"`
	Topic              Opt[string]    `json:"topic"`
	QuestionNumber     Opt[string]    `json:"question_number"`
	QuestionText       Opt[string]    `json:"question_text"`
	Difficulty         Opt[string]    `json:"difficulty"`
	HasDiagram         Opt[bool]      `json:"has_diagram"`
	DiagramDescription Opt[string]    `json:"diagram_description"`
	DiagramPosition    Opt[string]    `json:"diagram_position"`
	DiagramName        Opt[string]    `json:"diagram_name"`
	Answer             Opt[string]    `json:"answer"`
	AiAnswer           Opt[string]    `json:"ai_answer"`
	Solution           Opt[string]    `json:"solution"`
	Reviewed           Opt[bool]      `json:"reviewed"`
	Options            []OptionUpdate `json:"options"`
}

type QuestionCreate struct {
	Source             string         `json:"source" validate:"required,max=255"`
	Year               string         `json:"year" validate:"required,max=50"`
	Subject            string         `json:"subject" validate:"required,max=255"`
	Chapter            string         `json:"chapter" validate:"required,max=255"`
	Topic              string         `json:"topic" validate:"required,max=255"`
	QuestionNumber     string         `json:"question_number" validate:"required,max=50"`
	QuestionText       string         `json:"question_text" validate:"required"`
	Difficulty         *string        `json:"difficulty"`
	HasDiagram         bool           `json:"has_diagram"`
	DiagramDescription *string        `json:"diagram_description"`
	DiagramPosition    *string        `json:"diagram_position"`
	DiagramName        *string        `json:"diagram_name"`
	Answer             string         `json:"answer" validate:"required,max=50"`
	AiAnswer           *string        `json:"ai_answer"`
	Solution           *string        `json:"solution"`
	Options            []OptionCreate `json:"options" validate:"dive"`
}

type QuestionUpdate struct {
	Source             Opt[string]    `json:"source"`
	Year               Opt[string]    `json:"year"`
	Subject            Opt[string]    `json:"subject"`
	Chapter            Opt[string]    `json:"chapter"`
	Topic              Opt[string]    `json:"topic"`
	QuestionNumber     Opt[string]    `json:"question_number"`
	QuestionText       Opt[string]    `json:"question_text"`
	Difficulty         Opt[string]    `json:"difficulty"`
	HasDiagram         Opt[bool]      `json:"has_diagram"`
	DiagramDescription Opt[string]    `json:"diagram_description"`
	DiagramPosition    Opt[string]    `json:"diagram_position"`
	DiagramName        Opt[string]    `json:"diagram_name"`
	Answer             Opt[string]    `json:"answer"`
	AiAnswer           Opt[string]    `json:"ai_answer"`
	Solution           Opt[string]    `json:"solution"`
	Options            []OptionUpdate `json:"options"`
}

type MockTestCreate struct {
	MarksScored int             `json:"marks_scored"`
	TestStatus  string          `json:"test_status" validate:"required,max=50"`
	Questions   json.RawMessage `json:"questions"`
	TimeTaken   int             `json:"time_taken"`
	UserID      int             `json:"user_id" validate:"required"`
}

type MockTestUpdate struct {
	MarksScored Opt[int]             `json:"marks_scored"`
	TestStatus  Opt[string]          `json:"test_status"`
	Questions   Opt[json.RawMessage] `json:"questions"`
	TimeTaken   Opt[int]             `json:"time_taken"`
}

type TestSettingsCreate struct {
	Key      string `json:"key" validate:"required"`
	Value    string `json:"value" validate:"required"`
	IsActive *bool  `json:"is_active"`
}

type TestSettingsUpdate struct {
	Key      Opt[string] `json:"key"`
	Value    Opt[string] `json:"value"`
	IsActive Opt[bool]   `json:"is_active"`
}

// PrepareTestRequest asks for a fresh mock test over a subject's published
// question pool.
type PrepareTestRequest struct {
	UserID  int    `json:"user_id" validate:"required"`
	Subject string `json:"subject" validate:"required"`
}
