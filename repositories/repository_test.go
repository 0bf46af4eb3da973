package repositories

import (
	"reflect"
	"testing"
)

func TestBuildUpdateSortsColumns(t *testing.T) {
	query, args := buildUpdate("subjects", map[string]interface{}{
		"subject_name":    "Physics",
		"is_active":       true,
		"no_of_questions": 45,
	}, 3, "")
	want := "UPDATE subjects SET is_active = $1, no_of_questions = $2, subject_name = $3 WHERE id = $4"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if !reflect.DeepEqual(args, []interface{}{true, 45, "Physics", 3}) {
		t.Errorf("args = %v", args)
	}
}

func TestBuildUpdateExtraSet(t *testing.T) {
	query, args := buildUpdate("users", map[string]interface{}{
		"name": "Asha",
	}, 12, "updated_at = now()")
	want := "UPDATE users SET name = $1, updated_at = now() WHERE id = $2"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if !reflect.DeepEqual(args, []interface{}{"Asha", 12}) {
		t.Errorf("args = %v", args)
	}
}

func TestBuildUpdateExtraSetOnly(t *testing.T) {
	query, args := buildUpdate("users", nil, 12, "updated_at = now()")
	want := "UPDATE users SET updated_at = now() WHERE id = $1"
	if query != want {
		t.Errorf("query = %q, want %q", query, want)
	}
	if !reflect.DeepEqual(args, []interface{}{12}) {
		t.Errorf("args = %v", args)
	}
}

func TestBuildUpdateNilValue(t *testing.T) {
	_, args := buildUpdate("questions", map[string]interface{}{
		"difficulty": nil,
	}, 1, "")
	if args[0] != nil {
		t.Errorf("nil field value should pass through as nil, got %v", args[0])
	}
}
