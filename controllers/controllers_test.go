package controllers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func doJSON(t *testing.T, app *fiber.App, method, target, body string) int {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestCreateStageQuestionRejectsNonNumericNumber(t *testing.T) {
	app := fiber.New()
	app.Post("/process-questions", CreateStageQuestion)

	body := `{"source":"neet","year":"2023","subject":"Physics","chapter":"Kinematics",
		"topic":"Projectile Motion","question_number":"12a",
		"question_text":"A ball is thrown...","answer":"b"}`
	if status := doJSON(t, app, "POST", "/process-questions", body); status != fiber.StatusBadRequest {
		t.Errorf("non-numeric question_number accepted, status %d", status)
	}
}

func TestCreateQuestionRejectsNonNumericNumber(t *testing.T) {
	app := fiber.New()
	app.Post("/questions", CreateQuestion)

	body := `{"source":"neet","year":"2023","subject":"Physics","chapter":"Kinematics",
		"topic":"Projectile Motion","question_number":"12a",
		"question_text":"A ball is thrown...","answer":"b"}`
	if status := doJSON(t, app, "POST", "/questions", body); status != fiber.StatusBadRequest {
		t.Errorf("non-numeric question_number accepted, status %d", status)
	}
}

func TestSearchQuestionsRejectsReviewedFilter(t *testing.T) {
	app := fiber.New()
	app.Get("/questions/search", SearchQuestions)

	if status := doJSON(t, app, "GET", "/questions/search?reviewed=true", ""); status != fiber.StatusBadRequest {
		t.Errorf("reviewed filter on published questions accepted, status %d", status)
	}
}

func TestEditUserRejectsShortPassword(t *testing.T) {
	app := fiber.New()
	app.Patch("/users/:id", EditUser)

	if status := doJSON(t, app, "PATCH", "/users/1", `{"password":"x"}`); status != fiber.StatusBadRequest {
		t.Errorf("one-character password accepted on update, status %d", status)
	}
}

func TestEditStageQuestionRejectsEmptyAnswer(t *testing.T) {
	app := fiber.New()
	app.Patch("/process-questions/:id", EditStageQuestion)

	if status := doJSON(t, app, "PATCH", "/process-questions/1", `{"answer":""}`); status != fiber.StatusBadRequest {
		t.Errorf("empty answer accepted on update, status %d", status)
	}
}

func TestEditStageQuestionRejectsNonNumericNumber(t *testing.T) {
	app := fiber.New()
	app.Patch("/process-questions/:id", EditStageQuestion)

	if status := doJSON(t, app, "PATCH", "/process-questions/1", `{"question_number":"12a"}`); status != fiber.StatusBadRequest {
		t.Errorf("non-numeric question_number accepted on update, status %d", status)
	}
}
