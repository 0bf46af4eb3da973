package controllers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rewiselabs/rewise_neet_backend/models"
	"github.com/rewiselabs/rewise_neet_backend/services"
	"github.com/rewiselabs/rewise_neet_backend/util"
)

func paginationQuery(c *fiber.Ctx) (int, int) {
	skip, err := strconv.Atoi(c.Query("skip", "0"))
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.Atoi(c.Query("limit", "100"))
	if err != nil || limit <= 0 {
		limit = 100
	}
	return skip, limit
}

func CreateSubject(c *fiber.Ctx) error {
	validate := validator.New()
	var payload models.SubjectCreate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validate.Struct(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	subject, err := services.NewSubjectsService(util.DB).CreateSubject(payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"subject": subject,
	})
}

func GetSubjects(c *fiber.Ctx) error {
	skip, limit := paginationQuery(c)
	subjects, err := services.NewSubjectsService(util.DB).ListSubjects(skip, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"subjects": subjects,
	})
}

func GetSubjectByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid subject id", nil)
	}
	subject, err := services.NewSubjectsService(util.DB).GetSubject(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"subject": subject,
	})
}

func EditSubject(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid subject id", nil)
	}
	var payload models.SubjectUpdate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validateSubjectUpdate(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	subject, err := services.NewSubjectsService(util.DB).UpdateSubject(id, payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"subject": subject,
	})
}

func DeleteSubject(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid subject id", nil)
	}
	if err := services.NewSubjectsService(util.DB).DeleteSubject(id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func CreateChapter(c *fiber.Ctx) error {
	subjectID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid subject id", nil)
	}
	validate := validator.New()
	var payload models.ChapterCreate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	payload.SubjectID = subjectID
	if err := validate.Struct(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	chapter, err := services.NewSubjectsService(util.DB).CreateChapter(payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":  "success",
		"chapter": chapter,
	})
}

func GetChapterByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid chapter id", nil)
	}
	chapter, err := services.NewSubjectsService(util.DB).GetChapter(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"chapter": chapter,
	})
}

func GetChaptersBySubject(c *fiber.Ctx) error {
	subjectID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid subject id", nil)
	}
	skip, limit := paginationQuery(c)
	chapters, err := services.NewSubjectsService(util.DB).ListChaptersBySubject(subjectID, skip, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"chapters": chapters,
	})
}

func EditChapter(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid chapter id", nil)
	}
	var payload models.ChapterUpdate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validateChapterUpdate(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	chapter, err := services.NewSubjectsService(util.DB).UpdateChapter(id, payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "success",
		"chapter": chapter,
	})
}

func DeleteChapter(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid chapter id", nil)
	}
	if err := services.NewSubjectsService(util.DB).DeleteChapter(id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func CreateTopic(c *fiber.Ctx) error {
	chapterID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid chapter id", nil)
	}
	validate := validator.New()
	var payload models.TopicCreate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validate.Struct(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	topic, err := services.NewSubjectsService(util.DB).CreateTopic(payload, chapterID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"topic":  topic,
	})
}

func GetTopicByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid topic id", nil)
	}
	topic, err := services.NewSubjectsService(util.DB).GetTopic(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"topic":  topic,
	})
}

func GetTopicsByChapter(c *fiber.Ctx) error {
	chapterID, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid chapter id", nil)
	}
	skip, limit := paginationQuery(c)
	topics, err := services.NewSubjectsService(util.DB).ListTopicsByChapter(chapterID, skip, limit)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"topics": topics,
	})
}

func EditTopic(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid topic id", nil)
	}
	var payload models.TopicUpdate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validateTopicUpdate(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	topic, err := services.NewSubjectsService(util.DB).UpdateTopic(id, payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"topic":  topic,
	})
}

func DeleteTopic(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid topic id", nil)
	}
	if err := services.NewSubjectsService(util.DB).DeleteTopic(id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
