package controllers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rewiselabs/rewise_neet_backend/services"
)

// respondServiceError maps the service error taxonomy onto HTTP statuses:
// not-found -> 404, constraint violation -> 400, repeat promotion -> 409.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrSubjectNotFound),
		errors.Is(err, services.ErrChapterNotFound),
		errors.Is(err, services.ErrTopicNotFound),
		errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrStageQuestionNotFound),
		errors.Is(err, services.ErrSettingsNotFound),
		errors.Is(err, services.ErrMockTestNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrDuplicateUser):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrAlreadyPromoted):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"status":  "error",
			"message": err.Error(),
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"status":  "error",
		"message": "Database error",
		"error":   err.Error(),
	})
}

func parseIDParam(c *fiber.Ctx, name string) (int, error) {
	id, err := strconv.Atoi(c.Params(name))
	if err != nil || id <= 0 {
		return 0, errors.New("invalid " + name)
	}
	return id, nil
}

func badRequest(c *fiber.Ctx, message string, err error) error {
	body := fiber.Map{
		"status":  "error",
		"message": message,
	}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}
