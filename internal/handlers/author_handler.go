package handlers

import (
	"blogapp/internal/models"
	"blogapp/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthorHandler handles HTTP requests for users on the blog service, where
// updates are full replaces and related ids are not existence-validated.
type AuthorHandler struct {
	service  *services.AuthorService
	validate *validator.Validate
}

// NewAuthorHandler creates a new AuthorHandler.
func NewAuthorHandler(service *services.AuthorService) *AuthorHandler {
	return &AuthorHandler{service: service, validate: validator.New()}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *AuthorHandler) RegisterRoutes(router fiber.Router) {
	userRoutes := router.Group("/users")
	userRoutes.Get("/", h.HandleGetUsers)
	userRoutes.Get("/:id", h.HandleGetUserByID)
	userRoutes.Post("/", h.HandleCreateUser)
	userRoutes.Put("/:id", h.HandleUpdateUser)
	userRoutes.Delete("/:id", h.HandleDeleteUser)
}

func (h *AuthorHandler) HandleGetUsers(c *fiber.Ctx) error {
	views, err := h.service.Query()
	if err != nil {
		return serverError(c, "user query", err)
	}
	return c.JSON(views)
}

func (h *AuthorHandler) HandleGetUserByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	views, err := h.service.Query()
	if err != nil {
		return serverError(c, "user query", err)
	}
	for _, view := range views {
		if view.ID == uint(id) {
			return c.JSON(view)
		}
	}
	return c.SendStatus(fiber.StatusNotFound)
}

func (h *AuthorHandler) HandleCreateUser(c *fiber.Ctx) error {
	var req models.UserCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}
	result, err := h.service.Create(req)
	if err != nil {
		return serverError(c, "user create", err)
	}
	return writeResult(c, result, true)
}

func (h *AuthorHandler) HandleUpdateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	var req models.AuthorUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	req.ID = uint(id)
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, validationMessage(err))
	}
	result, err := h.service.Update(req)
	if err != nil {
		return serverError(c, "user update", err)
	}
	return writeResult(c, result, false)
}

func (h *AuthorHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	result, err := h.service.Delete(uint(id))
	if err != nil {
		return serverError(c, "user delete", err)
	}
	return writeResult(c, result, false)
}
