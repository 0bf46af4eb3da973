package controllers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rewiselabs/rewise_neet_backend/models"
	"github.com/rewiselabs/rewise_neet_backend/repositories"
	"github.com/rewiselabs/rewise_neet_backend/services"
	"github.com/rewiselabs/rewise_neet_backend/util"
)

// searchFiltersFromQuery reads the optional search query params. Absent
// params stay nil so the repository skips those conditions entirely.
func searchFiltersFromQuery(c *fiber.Ctx) (repositories.SearchFilters, error) {
	var filters repositories.SearchFilters
	if v := c.Query("year"); v != "" {
		filters.Year = &v
	}
	if v := c.Query("source"); v != "" {
		filters.Source = &v
	}
	if v := c.Query("subject"); v != "" {
		filters.Subject = &v
	}
	if v := c.Query("chapter"); v != "" {
		filters.Chapter = &v
	}
	if v := c.Query("reviewed"); v != "" {
		reviewed, err := strconv.ParseBool(v)
		if err != nil {
			return filters, err
		}
		filters.Reviewed = &reviewed
	}
	return filters, nil
}

func yearOnly(filters repositories.SearchFilters) bool {
	return filters.Year != nil && filters.Source == nil && filters.Subject == nil &&
		filters.Chapter == nil && filters.Reviewed == nil
}

func GetStageQuestions(c *fiber.Ctx) error {
	questions, err := services.NewStageQuestionService(util.DB).ListQuestions()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "success",
		"questions": questions,
	})
}

func SearchStageQuestions(c *fiber.Ctx) error {
	filters, err := searchFiltersFromQuery(c)
	if err != nil {
		return badRequest(c, "Invalid search filters", err)
	}
	svc := services.NewStageQuestionService(util.DB)
	var questions []models.StageQuestion
	if yearOnly(filters) {
		// the year view sorts by the numeric question number
		questions, err = svc.SearchQuestionsByYear(*filters.Year)
	} else {
		questions, err = svc.SearchQuestions(filters)
	}
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "success",
		"questions": questions,
	})
}

func GetStageQuestionByNumber(c *fiber.Ctx) error {
	year := c.Query("year")
	if year == "" {
		return badRequest(c, "Missing year", nil)
	}
	questionNumber := c.Params("questionNumber")
	if _, err := strconv.Atoi(questionNumber); err != nil {
		return badRequest(c, "Invalid question number", nil)
	}
	question, err := services.NewStageQuestionService(util.DB).GetQuestionByQuestionNumber(year, questionNumber)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"question": question,
	})
}

func GetStageQuestionByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid question id", nil)
	}
	question, err := services.NewStageQuestionService(util.DB).GetQuestion(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"question": question,
	})
}

func CreateStageQuestion(c *fiber.Ctx) error {
	validate := validator.New()
	var payload models.StageQuestionCreate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validate.Struct(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	// year views cast question_number to int, so it must never be stored
	// non-numeric
	if _, err := strconv.Atoi(payload.QuestionNumber); err != nil {
		return badRequest(c, "Invalid question number", nil)
	}
	question, err := services.NewStageQuestionService(util.DB).CreateQuestion(payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":   "success",
		"question": question,
	})
}

func EditStageQuestion(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid question id", nil)
	}
	var payload models.StageQuestionUpdate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validateStageQuestionUpdate(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	if payload.QuestionNumber.Set && !payload.QuestionNumber.Null {
		if _, err := strconv.Atoi(payload.QuestionNumber.Value); err != nil {
			return badRequest(c, "Invalid question number", nil)
		}
	}
	question, err := services.NewStageQuestionService(util.DB).UpdateQuestion(id, payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"question": question,
	})
}

func DeleteStageQuestion(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid question id", nil)
	}
	if err := services.NewStageQuestionService(util.DB).DeleteQuestion(id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MoveStageQuestion promotes a staged question into the published table.
// Repeat calls on an already promoted question return a conflict.
func MoveStageQuestion(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid question id", nil)
	}
	question, err := services.NewStageQuestionService(util.DB).MoveQuestion(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":   "success",
		"question": question,
	})
}

func GetStageUniqueSources(c *fiber.Ctx) error {
	sources, err := services.NewStageQuestionService(util.DB).GetUniqueSources()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"sources": sources,
	})
}

func GetStageUniqueSubjects(c *fiber.Ctx) error {
	subjects, err := services.NewStageQuestionService(util.DB).GetUniqueSubjects()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"subjects": subjects,
	})
}

func GetStageUniqueChapters(c *fiber.Ctx) error {
	var subject *string
	if v := c.Query("subject"); v != "" {
		subject = &v
	}
	chapters, err := services.NewStageQuestionService(util.DB).GetUniqueChapters(subject)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"chapters": chapters,
	})
}

func GetStageUniqueYears(c *fiber.Ctx) error {
	years, err := services.NewStageQuestionService(util.DB).GetUniqueYears()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"years":  years,
	})
}
