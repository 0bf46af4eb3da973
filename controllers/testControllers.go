package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rewiselabs/rewise_neet_backend/models"
	"github.com/rewiselabs/rewise_neet_backend/services"
	"github.com/rewiselabs/rewise_neet_backend/util"
)

func GetTestSettings(c *fiber.Ctx) error {
	settings, err := services.NewTestService(util.DB).ListSettings()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"settings": settings,
	})
}

func GetTestSettingsByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid settings id", nil)
	}
	settings, err := services.NewTestService(util.DB).GetSettings(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"settings": settings,
	})
}

func GetTestSettingsByKey(c *fiber.Ctx) error {
	key := c.Params("key")
	if key == "" {
		return badRequest(c, "Invalid settings key", nil)
	}
	settings, err := services.NewTestService(util.DB).GetSettingsByKey(key)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"settings": settings,
	})
}

func CreateTestSettings(c *fiber.Ctx) error {
	validate := validator.New()
	var payload models.TestSettingsCreate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validate.Struct(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	settings, err := services.NewTestService(util.DB).CreateSettings(payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":   "success",
		"settings": settings,
	})
}

func EditTestSettings(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid settings id", nil)
	}
	var payload models.TestSettingsUpdate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validateTestSettingsUpdate(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	settings, err := services.NewTestService(util.DB).UpdateSettings(id, payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":   "success",
		"settings": settings,
	})
}

func DeleteTestSettings(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid settings id", nil)
	}
	if err := services.NewTestService(util.DB).DeleteSettings(id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func GetMockTests(c *fiber.Ctx) error {
	tests, err := services.NewTestService(util.DB).ListMockTests()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":     "success",
		"mock_tests": tests,
	})
}

func GetMockTestsByUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userID")
	if err != nil {
		return badRequest(c, "Invalid user id", nil)
	}
	tests, err := services.NewTestService(util.DB).ListMockTestsByUser(userID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":     "success",
		"mock_tests": tests,
	})
}

func GetMockTestByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid mock test id", nil)
	}
	test, err := services.NewTestService(util.DB).GetMockTest(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "success",
		"mock_test": test,
	})
}

func CreateMockTest(c *fiber.Ctx) error {
	validate := validator.New()
	var payload models.MockTestCreate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validate.Struct(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	test, err := services.NewTestService(util.DB).CreateMockTest(payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":    "success",
		"mock_test": test,
	})
}

func EditMockTest(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid mock test id", nil)
	}
	var payload models.MockTestUpdate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validateMockTestUpdate(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	test, err := services.NewTestService(util.DB).UpdateMockTest(id, payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "success",
		"mock_test": test,
	})
}

func DeleteMockTest(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid mock test id", nil)
	}
	if err := services.NewTestService(util.DB).DeleteMockTest(id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PrepareTest assembles a fresh mock test for a user from the published
// question pool of a subject.
func PrepareTest(c *fiber.Ctx) error {
	validate := validator.New()
	var payload models.PrepareTestRequest
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validate.Struct(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	test, err := services.NewTestService(util.DB).PrepareTest(payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status":    "success",
		"mock_test": test,
	})
}

func GetTestQuestionsBySubject(c *fiber.Ctx) error {
	subject := c.Params("subject")
	if subject == "" {
		return badRequest(c, "Invalid subject", nil)
	}
	questions, err := services.NewTestService(util.DB).GetQuestionsBySubject(subject)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "success",
		"questions": questions,
	})
}
