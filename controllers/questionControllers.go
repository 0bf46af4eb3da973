package controllers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rewiselabs/rewise_neet_backend/models"
	"github.com/rewiselabs/rewise_neet_backend/services"
	"github.com/rewiselabs/rewise_neet_backend/util"
)

func GetQuestions(c *fiber.Ctx) error {
	questions, err := services.NewQuestionService(util.DB).ListQuestions()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "success",
		"questions": questions,
	})
}

func SearchQuestions(c *fiber.Ctx) error {
	// reviewed is a staging concept; published questions have no such column
	if c.Query("reviewed") != "" {
		return badRequest(c, "The reviewed filter only applies to staged questions", nil)
	}
	filters, err := searchFiltersFromQuery(c)
	if err != nil {
		return badRequest(c, "Invalid search filters", err)
	}
	svc := services.NewQuestionService(util.DB)
	var questions []models.Question
	if yearOnly(filters) {
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

func GetQuestionByNumber(c *fiber.Ctx) error {
	year := c.Query("year")
	if year == "" {
		return badRequest(c, "Missing year", nil)
	}
	questionNumber := c.Params("questionNumber")
	if _, err := strconv.Atoi(questionNumber); err != nil {
		return badRequest(c, "Invalid question number", nil)
	}
	question, err := services.NewQuestionService(util.DB).GetQuestionByQuestionNumber(year, questionNumber)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"question": question,
	})
}

func GetQuestionByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid question id", nil)
	}
	question, err := services.NewQuestionService(util.DB).GetQuestion(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"question": question,
	})
}

func CreateQuestion(c *fiber.Ctx) error {
	validate := validator.New()
	var payload models.QuestionCreate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validate.Struct(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	if _, err := strconv.Atoi(payload.QuestionNumber); err != nil {
		return badRequest(c, "Invalid question number", nil)
	}
	question, err := services.NewQuestionService(util.DB).CreateQuestion(payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":   "success",
		"question": question,
	})
}

func EditQuestion(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid question id", nil)
	}
	var payload models.QuestionUpdate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validateQuestionUpdate(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	if payload.QuestionNumber.Set && !payload.QuestionNumber.Null {
		if _, err := strconv.Atoi(payload.QuestionNumber.Value); err != nil {
			return badRequest(c, "Invalid question number", nil)
		}
	}
	question, err := services.NewQuestionService(util.DB).UpdateQuestion(id, payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"question": question,
	})
}

func DeleteQuestion(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid question id", nil)
	}
	if err := services.NewQuestionService(util.DB).DeleteQuestion(id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func GetUniqueSources(c *fiber.Ctx) error {
	sources, err := services.NewQuestionService(util.DB).GetUniqueSources()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"sources": sources,
	})
}

func GetUniqueSubjects(c *fiber.Ctx) error {
	subjects, err := services.NewQuestionService(util.DB).GetUniqueSubjects()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"subjects": subjects,
	})
}

func GetUniqueChapters(c *fiber.Ctx) error {
	var subject *string
	if v := c.Query("subject"); v != "" {
		subject = &v
	}
	chapters, err := services.NewQuestionService(util.DB).GetUniqueChapters(subject)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"chapters": chapters,
	})
}

func GetUniqueYears(c *fiber.Ctx) error {
	years, err := services.NewQuestionService(util.DB).GetUniqueYears()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"years":  years,
	})
}
