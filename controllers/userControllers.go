package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rewiselabs/rewise_neet_backend/models"
	"github.com/rewiselabs/rewise_neet_backend/services"
	"github.com/rewiselabs/rewise_neet_backend/util"
)

func GetUsers(c *fiber.Ctx) error {
	users, err := services.NewUserService(util.DB).ListUsers()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"users":  users,
	})
}

func GetUserByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id", nil)
	}
	user, err := services.NewUserService(util.DB).GetUser(id)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"user":   user,
	})
}

func CreateUser(c *fiber.Ctx) error {
	validate := validator.New()
	var payload models.UserCreate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validate.Struct(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	user, err := services.NewUserService(util.DB).CreateUser(payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"status": "success",
		"user":   user,
	})
}

func EditUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id", nil)
	}
	var payload models.UserUpdate
	if err := c.BodyParser(&payload); err != nil {
		return badRequest(c, "Failed to parse request body", err)
	}
	if err := validateUserUpdate(payload); err != nil {
		return badRequest(c, "Validation failed", err)
	}
	user, err := services.NewUserService(util.DB).UpdateUser(id, payload)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "success",
		"user":   user,
	})
}

func DeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return badRequest(c, "Invalid user id", nil)
	}
	if err := services.NewUserService(util.DB).DeleteUser(id); err != nil {
		return respondServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
