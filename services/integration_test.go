package services

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/rewiselabs/rewise_neet_backend/models"
	"github.com/rewiselabs/rewise_neet_backend/repositories"
	"github.com/rewiselabs/rewise_neet_backend/util"
)

// integrationDB connects to the Postgres named by REWISE_TEST_DSN and resets
// the schema. Tests that call it are skipped unless REWISE_INTEGRATION=1.
func integrationDB(t *testing.T) *sql.DB {
	t.Helper()
	if os.Getenv("REWISE_INTEGRATION") != "1" {
		t.Skip("set REWISE_INTEGRATION=1 and REWISE_TEST_DSN to run integration tests")
	}
	dsn := os.Getenv("REWISE_TEST_DSN")
	if dsn == "" {
		t.Skip("REWISE_TEST_DSN not set")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Ping(); err != nil {
		t.Fatal(err)
	}
	util.DB = db
	if err := util.DropTables(); err != nil {
		t.Fatal(err)
	}
	if err := util.CreateTableIfNotExists(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createTestUser(t *testing.T, db *sql.DB, email string) *models.User {
	t.Helper()
	user, err := NewUserService(db).CreateUser(models.UserCreate{
		Name:     "Asha Menon",
		Email:    email,
		Mobile:   "98" + email[:8],
		Password: "s3cret99",
	})
	if err != nil {
		t.Fatal(err)
	}
	return user
}

func stagePayload(year, number string) models.StageQuestionCreate {
	return models.StageQuestionCreate{
		Source:         "neet",
		Year:           year,
		Subject:        "Physics",
		Chapter:        "Kinematics",
		Topic:          "Projectile Motion",
		QuestionNumber: number,
		QuestionText:   "A ball is thrown at 45 degrees...",
		Answer:         "b",
		Options: []models.OptionCreate{
			{Label: "a", Text: "10 m"},
			{Label: "b", Text: "20 m"},
			{Label: "c", Text: "30 m"},
			{Label: "d", Text: "40 m"},
		},
	}
}

func TestUserLifecycle(t *testing.T) {
	db := integrationDB(t)
	svc := NewUserService(db)

	user := createTestUser(t, db, "asha@example.com")
	if user.Role != "user" || !user.IsActive {
		t.Errorf("defaults not applied: role=%q is_active=%v", user.Role, user.IsActive)
	}

	ok, err := svc.VerifyPassword(user.ID, "s3cret99")
	if err != nil || !ok {
		t.Errorf("stored password should verify, ok=%v err=%v", ok, err)
	}

	_, err = svc.CreateUser(models.UserCreate{
		Name:     "Someone Else",
		Email:    "asha@example.com",
		Mobile:   "9000000001",
		Password: "another1",
	})
	if !errors.Is(err, ErrDuplicateUser) {
		t.Errorf("duplicate email should fail with ErrDuplicateUser, got %v", err)
	}

	updated, err := svc.UpdateUser(user.ID, models.UserUpdate{
		Name: models.Some("Asha M"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Asha M" {
		t.Errorf("name not updated: %q", updated.Name)
	}
	if updated.Email != user.Email || updated.Mobile != user.Mobile {
		t.Error("untouched columns were clobbered by a partial update")
	}

	if err := svc.DeleteUser(user.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetUser(user.ID); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound after delete, got %v", err)
	}
}

func TestSubjectTreeCreateAndCascade(t *testing.T) {
	db := integrationDB(t)
	svc := NewSubjectsService(db)

	subject, err := svc.CreateSubject(models.SubjectCreate{
		SubjectName: "Chemistry",
		Chapters: []models.ChapterCreate{
			{
				No:   "1",
				Name: "Solid State",
				Topics: []models.TopicCreate{
					{No: "1.1", Name: "Crystal Lattices"},
					{No: "1.2", Name: "Unit Cells"},
				},
			},
			{No: "2", Name: "Solutions"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(subject.Chapters) != 2 {
		t.Fatalf("expected 2 chapters, got %d", len(subject.Chapters))
	}
	first := subject.Chapters[0]
	if first.FormattedName != "Solid_State" {
		t.Errorf("formatted_name default = %q, want Solid_State", first.FormattedName)
	}
	if len(first.Topics) != 2 {
		t.Fatalf("expected 2 topics under first chapter, got %d", len(first.Topics))
	}
	topicID := first.Topics[0].ID

	if _, err := svc.CreateChapter(models.ChapterCreate{
		No: "9", Name: "Orphan", SubjectID: subject.ID + 1000,
	}); !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("chapter under a missing subject should fail, got %v", err)
	}

	if err := svc.DeleteSubject(subject.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.GetChapter(first.ID); !errors.Is(err, ErrChapterNotFound) {
		t.Errorf("chapter should be gone after subject delete, got %v", err)
	}
	if _, err := svc.GetTopic(topicID); !errors.Is(err, ErrTopicNotFound) {
		t.Errorf("topic should be gone after subject delete, got %v", err)
	}
}

func TestStageQuestionPartialUpdate(t *testing.T) {
	db := integrationDB(t)
	svc := NewStageQuestionService(db)

	payload := stagePayload("2023", "12")
	diff := "medium"
	payload.Difficulty = &diff
	created, err := svc.CreateQuestion(payload)
	if err != nil {
		t.Fatal(err)
	}
	if len(created.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(created.Options))
	}

	solution := "Range = u^2 sin(2θ)/g"
	updated, err := svc.UpdateQuestion(created.ID, models.StageQuestionUpdate{
		Solution:   models.Some(solution),
		Difficulty: models.Null[string](),
		Options: []models.OptionUpdate{
			{ID: created.Options[1].ID, Text: models.Some("20 metres")},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Solution == nil || *updated.Solution != solution {
		t.Errorf("solution not set: %v", updated.Solution)
	}
	if updated.Difficulty != nil {
		t.Errorf("explicit null should clear difficulty, got %v", *updated.Difficulty)
	}
	if updated.QuestionText != created.QuestionText || updated.Answer != created.Answer {
		t.Error("omitted fields were clobbered")
	}
	for _, opt := range updated.Options {
		switch opt.ID {
		case created.Options[1].ID:
			if opt.Text != "20 metres" {
				t.Errorf("patched option text = %q", opt.Text)
			}
		default:
			if opt.Text == "20 metres" {
				t.Error("patch leaked into a sibling option")
			}
		}
	}
}

func TestStageQuestionPromotion(t *testing.T) {
	db := integrationDB(t)
	stageSvc := NewStageQuestionService(db)
	questionSvc := NewQuestionService(db)

	created, err := stageSvc.CreateQuestion(stagePayload("2022", "3"))
	if err != nil {
		t.Fatal(err)
	}

	published, err := stageSvc.MoveQuestion(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if published.QuestionText != created.QuestionText {
		t.Error("published question does not carry the staged content")
	}
	if len(published.Options) != len(created.Options) {
		t.Errorf("published options = %d, staged = %d", len(published.Options), len(created.Options))
	}
	if _, err := questionSvc.GetQuestion(published.ID); err != nil {
		t.Errorf("promoted question should be readable: %v", err)
	}

	stage, err := stageSvc.GetQuestion(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !stage.Reviewed {
		t.Error("promotion should stamp reviewed=true")
	}
	if stage.PublishedQuestionID == nil || *stage.PublishedQuestionID != published.ID {
		t.Errorf("published_question_id = %v, want %d", stage.PublishedQuestionID, published.ID)
	}

	if _, err := stageSvc.MoveQuestion(created.ID); !errors.Is(err, ErrAlreadyPromoted) {
		t.Errorf("repeat promotion should fail with ErrAlreadyPromoted, got %v", err)
	}
	questions, err := questionSvc.ListQuestions()
	if err != nil {
		t.Fatal(err)
	}
	if len(questions) != 1 {
		t.Errorf("repeat promotion must not duplicate rows, have %d", len(questions))
	}
}

func TestStageQuestionYearViewOrdersNumerically(t *testing.T) {
	db := integrationDB(t)
	svc := NewStageQuestionService(db)

	for _, number := range []string{"10", "2", "1"} {
		if _, err := svc.CreateQuestion(stagePayload("2021", number)); err != nil {
			t.Fatal(err)
		}
	}
	questions, err := svc.SearchQuestionsByYear("2021")
	if err != nil {
		t.Fatal(err)
	}
	got := []string{}
	for _, q := range questions {
		got = append(got, q.QuestionNumber)
	}
	want := []string{"1", "2", "10"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("year view order = %v, want %v", got, want)
		}
	}
}

func TestStageQuestionSearchIsConjunctive(t *testing.T) {
	db := integrationDB(t)
	svc := NewStageQuestionService(db)

	physics := stagePayload("2020", "1")
	if _, err := svc.CreateQuestion(physics); err != nil {
		t.Fatal(err)
	}
	botany := stagePayload("2020", "2")
	botany.Subject = "Botany"
	botany.Chapter = "Cell Biology"
	botany.Reviewed = true
	if _, err := svc.CreateQuestion(botany); err != nil {
		t.Fatal(err)
	}

	subject := "Botany"
	reviewed := true
	results, err := svc.SearchQuestions(repositories.SearchFilters{
		Subject:  &subject,
		Reviewed: &reviewed,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 || results[0].Subject != "Botany" {
		t.Errorf("conjunctive search returned %d rows", len(results))
	}

	sources, err := svc.GetUniqueChapters(&subject)
	if err != nil {
		t.Fatal(err)
	}
	if len(sources) != 1 || sources[0] != "Cell Biology" {
		t.Errorf("distinct chapters for Botany = %v", sources)
	}
}

func TestPrepareTestCapsPoolBySetting(t *testing.T) {
	db := integrationDB(t)
	testSvc := NewTestService(db)
	questionSvc := NewQuestionService(db)

	user := createTestUser(t, db, "test@example.com")
	if _, err := testSvc.CreateSettings(models.TestSettingsCreate{
		Key:   "questions_per_test",
		Value: "2",
	}); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 3; i++ {
		payload := models.QuestionCreate{
			Source:         "neet",
			Year:           "2023",
			Subject:        "Physics",
			Chapter:        "Optics",
			Topic:          "Refraction",
			QuestionNumber: fmt.Sprint(i),
			QuestionText:   fmt.Sprintf("Question %d", i),
			Answer:         "a",
			Options: []models.OptionCreate{
				{Label: "a", Text: "yes"},
				{Label: "b", Text: "no"},
			},
		}
		if _, err := questionSvc.CreateQuestion(payload); err != nil {
			t.Fatal(err)
		}
	}

	test, err := testSvc.PrepareTest(models.PrepareTestRequest{
		UserID:  user.ID,
		Subject: "Physics",
	})
	if err != nil {
		t.Fatal(err)
	}
	if test.TestStatus != "not_started" {
		t.Errorf("test_status = %q", test.TestStatus)
	}
	var pool []models.Question
	if err := json.Unmarshal(test.Questions, &pool); err != nil {
		t.Fatal(err)
	}
	if len(pool) != 2 {
		t.Errorf("pool size = %d, want the configured cap of 2", len(pool))
	}

	byUser, err := testSvc.ListMockTestsByUser(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(byUser) != 1 {
		t.Errorf("expected one mock test for the user, got %d", len(byUser))
	}

	if _, err := testSvc.PrepareTest(models.PrepareTestRequest{
		UserID:  user.ID + 1000,
		Subject: "Physics",
	}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("prepare for a missing user should fail, got %v", err)
	}
}

func TestSettingsByKeyReturnsLowestID(t *testing.T) {
	db := integrationDB(t)
	svc := NewTestService(db)

	first, err := svc.CreateSettings(models.TestSettingsCreate{Key: "theme", Value: "light"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateSettings(models.TestSettingsCreate{Key: "theme", Value: "dark"}); err != nil {
		t.Fatal(err)
	}

	got, err := svc.GetSettingsByKey("theme")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != first.ID || got.Value != "light" {
		t.Errorf("by-key lookup = id %d value %q, want the lowest id", got.ID, got.Value)
	}

	if _, err := svc.GetSettingsByKey("missing"); !errors.Is(err, ErrSettingsNotFound) {
		t.Errorf("missing key should fail with ErrSettingsNotFound, got %v", err)
	}
}
