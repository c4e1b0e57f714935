package handlers

import (
	"fmt"
	"log"
	"strings"

	"blogapp/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// validationMessage joins field-level validation failures into the single
// message carried by the failure envelope.
func validationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("Field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
	}
	return strings.Join(messages, "; ")
}

// badRequest reports a malformed or invalid request body.
func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.Fail(message))
}

// writeResult maps a command result onto the transport: business failures
// become 400, successful creates 201, everything else 200.
func writeResult(c *fiber.Ctx, result models.CommandResult, created bool) error {
	if !result.Success {
		return c.Status(fiber.StatusBadRequest).JSON(result)
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(result)
	}
	return c.JSON(result)
}

// serverError reports an unexpected failure generically; details stay in the
// log.
func serverError(c *fiber.Ctx, operation string, err error) error {
	log.Printf("Error during %s: %v", operation, err)
	return c.Status(fiber.StatusInternalServerError).JSON(models.Fail("An unexpected error occurred."))
}
