package services

import (
	"encoding/json"
	"testing"

	"github.com/rewiselabs/rewise_neet_backend/models"
)

func TestSubjectUpdateFieldsOmittedKeysStayOut(t *testing.T) {
	var payload models.SubjectUpdate
	if err := json.Unmarshal([]byte(`{"subject_name": "Physics"}`), &payload); err != nil {
		t.Fatal(err)
	}
	fields := subjectUpdateFields(payload)
	if len(fields) != 1 {
		t.Fatalf("expected only subject_name, got %v", fields)
	}
	if fields["subject_name"] != "Physics" {
		t.Errorf("subject_name = %v", fields["subject_name"])
	}
}

func TestSubjectUpdateFieldsExplicitNullClears(t *testing.T) {
	var payload models.SubjectUpdate
	if err := json.Unmarshal([]byte(`{"no_of_questions": null}`), &payload); err != nil {
		t.Fatal(err)
	}
	fields := subjectUpdateFields(payload)
	v, ok := fields["no_of_questions"]
	if !ok {
		t.Fatal("explicit null on a nullable column should produce a nil entry")
	}
	if v != nil {
		t.Errorf("no_of_questions = %v, want nil", v)
	}
}

func TestSubjectUpdateFieldsNullOnRequiredIgnored(t *testing.T) {
	var payload models.SubjectUpdate
	if err := json.Unmarshal([]byte(`{"subject_name": null}`), &payload); err != nil {
		t.Fatal(err)
	}
	fields := subjectUpdateFields(payload)
	if _, ok := fields["subject_name"]; ok {
		t.Error("null on a NOT NULL column should be dropped, not rendered")
	}
}

func TestStageQuestionUpdateFieldsFalseIsAWrite(t *testing.T) {
	fields := stageQuestionUpdateFields(models.StageQuestionUpdate{
		Reviewed: models.Some(false),
	})
	v, ok := fields["reviewed"]
	if !ok {
		t.Fatal("explicit false must be written, not skipped")
	}
	if v != false {
		t.Errorf("reviewed = %v, want false", v)
	}
}

func TestStageQuestionUpdateFieldsClearsDiagramColumns(t *testing.T) {
	fields := stageQuestionUpdateFields(models.StageQuestionUpdate{
		HasDiagram:         models.Some(false),
		DiagramDescription: models.Null[string](),
		DiagramPosition:    models.Null[string](),
		DiagramName:        models.Null[string](),
	})
	for _, col := range []string{"diagram_description", "diagram_position", "diagram_name"} {
		v, ok := fields[col]
		if !ok || v != nil {
			t.Errorf("%s should be cleared to nil, got %v (present=%v)", col, v, ok)
		}
	}
}

func TestOptionPatchFieldsKeyedByID(t *testing.T) {
	patches := optionPatchFields([]models.OptionUpdate{
		{ID: 7, Text: models.Some("updated text")},
		{ID: 9, Label: models.Some("b")},
	})
	if len(patches) != 2 {
		t.Fatalf("expected two patches, got %d", len(patches))
	}
	if patches[7]["text"] != "updated text" {
		t.Errorf("patch 7 text = %v", patches[7]["text"])
	}
	if patches[9]["label"] != "b" {
		t.Errorf("patch 9 label = %v", patches[9]["label"])
	}
}

func TestOptionPatchFieldsEmpty(t *testing.T) {
	if got := optionPatchFields(nil); got != nil {
		t.Errorf("expected nil for no patches, got %v", got)
	}
}

func TestMockTestUpdateFieldsQuestionsBlob(t *testing.T) {
	var payload models.MockTestUpdate
	if err := json.Unmarshal([]byte(`{"questions": [{"id": 1}], "test_status": "finished"}`), &payload); err != nil {
		t.Fatal(err)
	}
	fields := mockTestUpdateFields(payload)
	blob, ok := fields["questions"].([]byte)
	if !ok {
		t.Fatalf("questions should be rendered as raw bytes, got %T", fields["questions"])
	}
	if string(blob) != `[{"id": 1}]` {
		t.Errorf("questions blob = %s", blob)
	}
	if fields["test_status"] != "finished" {
		t.Errorf("test_status = %v", fields["test_status"])
	}
}
