package models

import (
	"encoding/json"
	"testing"
)

func TestOptAbsentKey(t *testing.T) {
	var payload struct {
		Name Opt[string] `json:"name"`
	}
	if err := json.Unmarshal([]byte(`{}`), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Name.Set {
		t.Error("absent key should leave Set false")
	}
}

func TestOptExplicitNull(t *testing.T) {
	var payload struct {
		Difficulty Opt[string] `json:"difficulty"`
	}
	if err := json.Unmarshal([]byte(`{"difficulty": null}`), &payload); err != nil {
		t.Fatal(err)
	}
	if !payload.Difficulty.Set || !payload.Difficulty.Null {
		t.Errorf("explicit null should set Set and Null, got %+v", payload.Difficulty)
	}
}

func TestOptValue(t *testing.T) {
	var payload struct {
		NoOfQuestions Opt[int] `json:"no_of_questions"`
	}
	if err := json.Unmarshal([]byte(`{"no_of_questions": 45}`), &payload); err != nil {
		t.Fatal(err)
	}
	if !payload.NoOfQuestions.Set || payload.NoOfQuestions.Null {
		t.Fatalf("value should set Set only, got %+v", payload.NoOfQuestions)
	}
	if payload.NoOfQuestions.Value != 45 {
		t.Errorf("Value = %d, want 45", payload.NoOfQuestions.Value)
	}
}

func TestOptZeroValue(t *testing.T) {
	var payload struct {
		IsActive Opt[bool] `json:"is_active"`
	}
	if err := json.Unmarshal([]byte(`{"is_active": false}`), &payload); err != nil {
		t.Fatal(err)
	}
	if !payload.IsActive.Set || payload.IsActive.Null || payload.IsActive.Value != false {
		t.Errorf("explicit false should carry through, got %+v", payload.IsActive)
	}
}

func TestOptTypeMismatch(t *testing.T) {
	var payload struct {
		No Opt[int] `json:"no"`
	}
	if err := json.Unmarshal([]byte(`{"no": "three"}`), &payload); err == nil {
		t.Error("expected an error decoding string into Opt[int]")
	}
}
