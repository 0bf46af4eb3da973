package services

import (
	"github.com/rewiselabs/rewise_neet_backend/models"
)

// The field builders below are the single place where "which fields may be
// written, and which may be blanked" is decided. Repositories just render
// whatever map they are handed.

// setField applies an Opt to a nullable column: absent leaves the column
// untouched, explicit null clears it, a value overwrites it.
func setField[T any](fields map[string]interface{}, column string, o models.Opt[T]) {
	if !o.Set {
		return
	}
	if o.Null {
		fields[column] = nil
		return
	}
	fields[column] = o.Value
}

// setRequired applies an Opt to a NOT NULL column; explicit null is treated
// the same as absent.
func setRequired[T any](fields map[string]interface{}, column string, o models.Opt[T]) {
	if !o.Set || o.Null {
		return
	}
	fields[column] = o.Value
}

func userUpdateFields(payload models.UserUpdate) map[string]interface{} {
	fields := map[string]interface{}{}
	setRequired(fields, "name", payload.Name)
	setRequired(fields, "mobile", payload.Mobile)
	setRequired(fields, "role", payload.Role)
	setRequired(fields, "is_active", payload.IsActive)
	return fields
}

func subjectUpdateFields(payload models.SubjectUpdate) map[string]interface{} {
	fields := map[string]interface{}{}
	setRequired(fields, "subject_name", payload.SubjectName)
	setField(fields, "no_of_questions", payload.NoOfQuestions)
	setRequired(fields, "is_active", payload.IsActive)
	return fields
}

func chapterUpdateFields(payload models.ChapterUpdate) map[string]interface{} {
	fields := map[string]interface{}{}
	setRequired(fields, "no", payload.No)
	setRequired(fields, "name", payload.Name)
	setRequired(fields, "formatted_name", payload.FormattedName)
	setField(fields, "no_of_questions", payload.NoOfQuestions)
	setRequired(fields, "is_active", payload.IsActive)
	setRequired(fields, "subject_id", payload.SubjectID)
	return fields
}

func topicUpdateFields(payload models.TopicUpdate) map[string]interface{} {
	fields := map[string]interface{}{}
	setRequired(fields, "no", payload.No)
	setRequired(fields, "name", payload.Name)
	setRequired(fields, "formatted_name", payload.FormattedName)
	setField(fields, "no_of_questions", payload.NoOfQuestions)
	setRequired(fields, "is_active", payload.IsActive)
	setRequired(fields, "chapter_id", payload.ChapterID)
	return fields
}

func stageQuestionUpdateFields(payload models.StageQuestionUpdate) map[string]interface{} {
	fields := map[string]interface{}{}
	setRequired(fields, "source", payload.Source)
	setRequired(fields, "year", payload.Year)
	setRequired(fields, "subject", payload.Subject)
	setRequired(fields, "chapter", payload.Chapter)
	setRequired(fields, "topic", payload.Topic)
	setRequired(fields, "question_number", payload.QuestionNumber)
	setRequired(fields, "question_text", payload.QuestionText)
	setField(fields, "difficulty", payload.Difficulty)
	setRequired(fields, "has_diagram", payload.HasDiagram)
	setField(fields, "diagram_description", payload.DiagramDescription)
	setField(fields, "diagram_position", payload.DiagramPosition)
	setField(fields, "diagram_name", payload.DiagramName)
	setRequired(fields, "answer", payload.Answer)
	setField(fields, "ai_answer", payload.AiAnswer)
	setField(fields, "solution", payload.Solution)
	setRequired(fields, "reviewed", payload.Reviewed)
	return fields
}

func questionUpdateFields(payload models.QuestionUpdate) map[string]interface{} {
	fields := map[string]interface{}{}
	setRequired(fields, "source", payload.Source)
	setRequired(fields, "year", payload.Year)
	setRequired(fields, "subject", payload.Subject)
	setRequired(fields, "chapter", payload.Chapter)
	setRequired(fields, "topic", payload.Topic)
	setRequired(fields, "question_number", payload.QuestionNumber)
	setRequired(fields, "question_text", payload.QuestionText)
	setField(fields, "difficulty", payload.Difficulty)
	setRequired(fields, "has_diagram", payload.HasDiagram)
	setField(fields, "diagram_description", payload.DiagramDescription)
	setField(fields, "diagram_position", payload.DiagramPosition)
	setField(fields, "diagram_name", payload.DiagramName)
	setRequired(fields, "answer", payload.Answer)
	setField(fields, "ai_answer", payload.AiAnswer)
	setField(fields, "solution", payload.Solution)
	return fields
}

func optionUpdateFields(payload models.OptionUpdate) map[string]interface{} {
	fields := map[string]interface{}{}
	setRequired(fields, "label", payload.Label)
	setRequired(fields, "text", payload.Text)
	setRequired(fields, "has_diagram", payload.HasDiagram)
	setField(fields, "diagram_description", payload.DiagramDescription)
	setField(fields, "diagram_name", payload.DiagramName)
	return fields
}

// optionPatchFields turns a list of option patches into per-option field maps
// keyed by option id. Patches for unknown ids are passed through; the
// repository's question_id guard makes them no-ops.
func optionPatchFields(patches []models.OptionUpdate) map[int]map[string]interface{} {
	if len(patches) == 0 {
		return nil
	}
	byID := map[int]map[string]interface{}{}
	for _, patch := range patches {
		byID[patch.ID] = optionUpdateFields(patch)
	}
	return byID
}

func mockTestUpdateFields(payload models.MockTestUpdate) map[string]interface{} {
	fields := map[string]interface{}{}
	setRequired(fields, "marks_scored", payload.MarksScored)
	setRequired(fields, "test_status", payload.TestStatus)
	if payload.Questions.Set {
		if payload.Questions.Null {
			fields["questions"] = nil
		} else {
			fields["questions"] = []byte(payload.Questions.Value)
		}
	}
	setRequired(fields, "time_taken", payload.TimeTaken)
	return fields
}

func testSettingsUpdateFields(payload models.TestSettingsUpdate) map[string]interface{} {
	fields := map[string]interface{}{}
	setRequired(fields, "key", payload.Key)
	setRequired(fields, "value", payload.Value)
	setRequired(fields, "is_active", payload.IsActive)
	return fields
}
